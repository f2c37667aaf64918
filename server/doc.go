// Package server provides the registration-and-dispatch core of mcp-core.
//
// A Server owns four independent entity collections (tools, resources,
// resource templates, and prompts), each keyed by identity and preserving
// registration order. Entities are registered through fluent builders:
//
//	srv := server.New(server.Info{Name: "notes", Version: "1.0.0"})
//
//	srv.Tool("search").
//	    Description("Search notes").
//	    Safety(server.Safety{ReadOnly: true}).
//	    Handler(func(ctx context.Context, input SearchInput) ([]string, error) {
//	        return store.Search(input.Query)
//	    })
//
//	srv.Resource("notes:///inbox").
//	    Name("Inbox").
//	    Handler(func(ctx context.Context) ([]server.ResourceContent, error) {
//	        return inboxContents()
//	    })
//
//	srv.ResourceTemplate("notes:///users/{userId}/notes/{noteId}").
//	    Name("User note").
//	    Handler(func(ctx context.Context, uri string, vars map[string]string) ([]server.ResourceContent, error) {
//	        return noteContents(vars["userId"], vars["noteId"])
//	    })
//
// Dispatch resolves incoming requests against the registry: tools and
// prompts by exact name, resources by exact URI first and then by scanning
// templates in registration order. An unresolved request produces a
// not-found error whose message contains the requested identity.
//
// When a transport implementing ListChangedTransport is bound, every
// successful registration triggers exactly one matching list-changed
// notification. Before a transport is bound, notifications are silently
// dropped.
package server
