// Package emsearchclient provides the entry point for constructing an
// emsearch API client that implements the emsearch.Client interface.
//
// Quick start
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
//
//	  // Production host, bearer token only.
//	  cli, err := emsearchclient.NewWithToken(ctx, "", "my-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a staging host with extra headers on every request.
//	  cli, err = emsearchclient.New(ctx, &emsearch.Config{
//	    BaseURL:     "staging.emsearch.io",
//	    BearerToken: "my-token",
//	    Headers:     map[string]string{"Accept-Language": "fr"},
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  decoders, err := cli.DataStreamDecoders().All(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  for _, d := range decoders.Data {
//	    log.Println(d.ID, d.Name)
//	  }
//	}
//
// Base URLs are normalized: trailing slashes are trimmed and "https://" is
// added when no scheme is given.
package emsearchclient
