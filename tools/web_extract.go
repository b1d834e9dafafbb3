package tools

import "github.com/initializ/webtools/tavily"

const webExtractDescription = "Extract the readable content of one or " +
	"more web pages. Use it to read pages whose URLs are already known, " +
	"such as search results worth a closer look."

// NewExtract builds the web_extract tool.
func NewExtract(client *tavily.Client, opts *tavily.ExtractOptions) Tool {
	return newWebTool("web_extract", webExtractDescription, CategoryRetrieval,
		tavily.KindExtract, client, opts.Params())
}
