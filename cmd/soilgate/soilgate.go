package soilgate

import (
	"fmt"
	"os"
	"path"
	"soilgate/cmd/soilgate/check"
	"soilgate/cmd/soilgate/get"
	"soilgate/cmd/soilgate/run"
	"soilgate/cmd/soilgate/start"
	"soilgate/internal/cli"
	"soilgate/internal/common"
	"soilgate/internal/config"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/viper"
)

var availableLogLevels = []string{
	string(common.LogLevelTrace),
	string(common.LogLevelDebug),
	string(common.LogLevelInfo),
	string(common.LogLevelWarn),
	string(common.LogLevelError),
}

var persistentFlags cli.Flags = cli.Flags{
	{
		Name:         "config",
		Short:        'C',
		DefaultValue: "~/.soilgate/config",
		Usage:        "Defines the location of the global configuration used",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "env-file",
		DefaultValue: ".env",
		Usage:        "Defines a dotenv file to load into the environment before flags are read",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "log-level",
		Short:        'l',
		DefaultValue: "info",
		Usage:        fmt.Sprintf("Sets the log level (one of [%s])", strings.Join(availableLogLevels, ", ")),
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "output",
		Short:        'o',
		DefaultValue: cli.OutputText,
		Usage:        fmt.Sprintf("Sets the output format where applicable (one of [%s])", strings.Join(cli.Outputs, ", ")),
		Type:         cli.FlagTypeString,
	},
}

var flags cli.Flags = cli.Flags{
	{
		Name:         "docs",
		DefaultValue: false,
		Usage:        "When this flag is specified, generates Markdown documentation for the CLI application",
		Type:         cli.FlagTypeBool,
	},
	{
		Name:         "docs-path",
		DefaultValue: "./docs/cli",
		Usage:        "Specifies the location to generate documentation in",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	cobra.AddTemplateFunc("prependText", func() string {
		return cli.Logo + "\n"
	})
	Command.SetHelpTemplate(`{{ prependText }}` + Command.HelpTemplate())
	Command.SetVersionTemplate(cli.Logo + "\n" + `{{with .DisplayName}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}`)

	Command.AddCommand(check.Command)
	Command.AddCommand(get.Command)
	Command.AddCommand(run.Command)
	Command.AddCommand(start.Command)
	Command.SilenceErrors = true
	Command.SilenceUsage = true

	persistentFlags.AddToCommand(Command, true)
	flags.AddToCommand(Command)

	logrus.SetOutput(os.Stderr)
	cobra.OnInitialize(func() {
		persistentFlags.BindViper(Command, true)
		flags.BindViper(Command)
		cli.InitLogging(viper.GetString("log-level"))
		envFilePath := viper.GetString("env-file")
		if err := config.LoadEnvFile(envFilePath); err != nil {
			logrus.Warnf("failed to load env file at path[%s]: %s", envFilePath, err)
		}
		configPath := viper.GetString("config")
		logrus.Debugf("using configuration at path[%s]", configPath)
		if err := config.LoadGlobal(configPath); err != nil {
			logrus.Warnf("failed to load configuration at path[%s]: %s", configPath, err)
		}
	})

	cli.InitConfig()
}

var Command = &cobra.Command{
	Use:     "soilgate",
	Short:   "Session-authenticated gateway for a soil moisture irrigation rig",
	Version: config.GetVersion(),
	Long:    "Serves the irrigation dashboard and relays moisture readings, motor commands and voice commands between logged-in users and the rig's sensor and voice services",
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("docs") {
			return generateDocs(cmd, viper.GetString("docs-path"))
		}
		return cmd.Help()
	},
}

func generateDocs(cmd *cobra.Command, docsPath string) error {
	logrus.Infof("generating documentation at path[%s]", docsPath)
	if err := os.MkdirAll(docsPath, 0755); err != nil {
		return err
	}
	commandMap := map[string]bool{}
	if err := doc.GenMarkdownTreeCustom(cmd, docsPath, func(in string) string {
		return ""
	}, func(in string) string {
		commandMap[in] = true
		return fmt.Sprintf("cli/%s", in)
	}); err != nil {
		return fmt.Errorf("failed to generate markdown tree: %w", err)
	}
	commandList := []string{}
	for k := range commandMap {
		commandList = append(commandList, k)
	}
	sort.Strings(commandList)
	var sidebar strings.Builder
	sidebar.WriteString("* [Home](/)\n")
	sidebar.WriteString("* [soilgate](cli/soilgate \"Soilgate CLI\")\n")
	for _, command := range commandList {
		commandName := strings.Split(command, ".")
		commandParts := strings.Split(commandName[0], "_")
		if len(commandParts) > 1 {
			for i := 0; i < len(commandParts)-1; i++ {
				sidebar.WriteString("  ")
			}
			sidebar.WriteString(fmt.Sprintf("* [%s](cli/%s \"Soilgate CLI: %s\")\n", commandParts[len(commandParts)-1], command, strings.Join(commandParts, " ")))
		}
	}
	return os.WriteFile(path.Join(docsPath, "_sidebar.md"), []byte(sidebar.String()), 0644)
}
