package cli

const (
	FlagTypeBool        FlagType = "bool"
	FlagTypeDuration    FlagType = "duration"
	FlagTypeFloat       FlagType = "float"
	FlagTypeInteger     FlagType = "integer"
	FlagTypeString      FlagType = "string"
	FlagTypeStringSlice FlagType = "stringslice"
)

const (
	OutputText = "text"
	OutputJson = "json"
	OutputYaml = "yaml"
)

var Outputs = []string{
	OutputText,
	OutputJson,
	OutputYaml,
}

const Logo = `
 ┌─┐┌─┐┬┬  ┌─┐┌─┐┌┬┐┌─┐
 └─┐│ │││  │ ┬├─┤ │ ├┤
 └─┘└─┘┴┴─┘└─┘┴ ┴ ┴ └─┘`
