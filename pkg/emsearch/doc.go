// Package emsearch provides types, interfaces, and helpers for working with the
// emsearch search-indexing API.
//
// # Overview
//
// The emsearch package defines the resource types (Project, DataStream,
// SearchUseCase, SyncTask, ...), the response envelopes that wrap them, the
// request parameter structs, and one interface per REST resource
// (ProjectsClient, DataStreamsClient, ...). A concrete implementation of these
// clients is provided by the emsearchclient package.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/emsearch/emsearch-client/pkg/emsearch"
//	  "github.com/emsearch/emsearch-client/pkg/emsearchclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := emsearchclient.New(ctx, &emsearch.Config{BearerToken: "token"})
//	  if err != nil { log.Fatal(err) }
//
//	  projects, err := cli.Projects().All(ctx, &emsearch.ProjectListParams{
//	    ListParams: *emsearch.NewListParams().WithLimit(50).WithInclude("search_engine"),
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Relations
//
// Relations are only present when they were requested through the include
// parameter. To-one relations are *Response[T] values and to-many relations
// are *Collection[T] values; both are nil when the server did not send them.
// Response.Value and Collection.Items are nil-safe, so chains such as
//
//	field.DataStreamField.Value().DataStream.Value()
//
// only need a nil check on the last step.
//
// # Errors
//
// Every resource client method returns *UnexpectedStatusCodeError when the
// server answers with a status code other than the documented one. Helpers
// such as IsNotFound and IsValidationError branch on the common cases.
// Transport and decoding failures are returned wrapped, as is.
package emsearch
