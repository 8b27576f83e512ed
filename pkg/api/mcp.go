package api

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Magal-W/HebrewWeek/pkg/kit"
	"github.com/Magal-W/HebrewWeek/pkg/store"
)

// RegisterMCPTools registers the read-only glossary tools on the server.
// Moderation stays HTTP-only: MCP clients browse, they do not review.
func RegisterMCPTools(srv *server.MCPServer, s *store.Store) {
	registerTranslateWord(srv, s)
	registerIsKnownWord(srv, s)
	registerSearchTranslations(srv, s)
	registerMistakeTallies(srv, s)
	registerMistakenWords(srv, s)
}

func registerTranslateWord(srv *server.MCPServer, s *store.Store) {
	tool := mcp.NewTool("translate_word",
		mcp.WithDescription("Translate an English word to Hebrew using the community glossary. The word is resolved through canonical mappings first."),
		mcp.WithString("word", mcp.Required(), mcp.Description("The English word to translate")),
	)

	kit.RegisterMCPTool(srv, tool, translateEndpoint(s), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		word, _ := req.GetArguments()["word"].(string)
		return &kit.MCPDecodeResult{Request: &wordReq{Word: word}}, nil
	})
}

func registerIsKnownWord(srv *server.MCPServer, s *store.Store) {
	tool := mcp.NewTool("is_known_word",
		mcp.WithDescription("Check whether a word is known to the glossary, either as a canonical headword or through a canonical mapping."),
		mcp.WithString("word", mcp.Required(), mcp.Description("The word to check")),
	)

	kit.RegisterMCPTool(srv, tool, isKnownWordEndpoint(s), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		word, _ := req.GetArguments()["word"].(string)
		return &kit.MCPDecodeResult{Request: &wordReq{Word: word}}, nil
	})
}

func registerSearchTranslations(srv *server.MCPServer, s *store.Store) {
	tool := mcp.NewTool("search_translations",
		mcp.WithDescription("Search the bilingual dictionary. Matching is case-insensitive and ignores Hebrew niqqud; an empty term returns the full dictionary."),
		mcp.WithString("term", mcp.Description("Search term, English or Hebrew")),
	)

	kit.RegisterMCPTool(srv, tool, searchTranslationsEndpoint(s), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		term, _ := req.GetArguments()["term"].(string)
		return &kit.MCPDecodeResult{Request: &searchTranslationsReq{Term: term}}, nil
	})
}

func registerMistakeTallies(srv *server.MCPServer, s *store.Store) {
	tool := mcp.NewTool("mistake_tallies",
		mcp.WithDescription("List participants' English-usage mistakes with occurrence counts. Pass a name for one participant, omit it for everyone."),
		mcp.WithString("name", mcp.Description("Participant name (optional)")),
	)

	kit.RegisterMCPTool(srv, tool, func(ctx context.Context, request any) (any, error) {
		if req, ok := request.(*nameReq); ok && req.Name != "" {
			return s.MistakesFor(ctx, req.Name)
		}
		return s.AllMistakes(ctx)
	}, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		name, _ := req.GetArguments()["name"].(string)
		return &kit.MCPDecodeResult{Request: &nameReq{Name: name}}, nil
	})
}

func registerMistakenWords(srv *server.MCPServer, s *store.Store) {
	tool := mcp.NewTool("mistaken_words",
		mcp.WithDescription("List the distinct mistake texts recorded across all participants."),
	)

	kit.RegisterMCPTool(srv, tool, func(ctx context.Context, _ any) (any, error) {
		return s.MistakenWords(ctx)
	}, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{}, nil
	})
}
