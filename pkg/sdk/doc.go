// Package sdk provides an embedded Go client for the filterdsl model
// registry and query translation engine.
//
// The client wires the registry and translator directly over a model store,
// either Redis-backed or file-backed, with no HTTP server in between:
//
//	client, _ := sdk.New(ctx, sdk.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	model := filterdsl.NewModel(map[string]filterdsl.FieldType{
//	    "title":  filterdsl.FieldTypeText,
//	    "status": filterdsl.FieldTypeKeyword,
//	})
//	_, _ = client.Models().Put(ctx, "products", model)
//
//	body, _ := client.Queries("products").Filters(ctx, map[string]any{
//	    "status": "active",
//	    "$gte":   map[string]any{"created": "2024-01-01"},
//	})
//
// File-backed clients read a YAML models file once at startup and reject
// writes; use them when the model set is fixed at deploy time.
package sdk
