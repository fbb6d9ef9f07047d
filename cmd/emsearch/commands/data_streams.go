package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// NewDataStreamsCommand creates the data-streams command group
func NewDataStreamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "data-streams",
		Aliases: []string{"data-stream", "ds"},
		Short:   "Manage data streams",
		Long:    "List, inspect and delete the feeds ingested by projects",
	}

	cmd.AddCommand(createListCommand(ListConfig[emsearch.DataStream]{
		Resource: "data streams",
		Header:   []string{"ID", "Name", "Decoder", "Feed URL"},
		Row: func(stream emsearch.DataStream) []string {
			return []string{stream.ID, stream.Name, stream.DataStreamDecoderID, stream.FeedURL}
		},
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().String("decoder-id", "", "filter by data stream decoder")
		},
		List: func(ctx context.Context, client emsearch.Client, cmd *cobra.Command, params emsearch.ListParams) (*emsearch.ListResponse[emsearch.DataStream], error) {
			return client.DataStreams().All(ctx, &emsearch.DataStreamListParams{
				ListParams:          params,
				DataStreamDecoderID: optionalString(cmd, "decoder-id"),
			})
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[emsearch.DataStream]{
		Resource: "data stream",
		Arg:      "DATA_STREAM_ID",
		Details: func(stream *emsearch.DataStream) [][]string {
			rows := [][]string{
				{"ID", stream.ID},
				{"Name", stream.Name},
				{"Decoder ID", stream.DataStreamDecoderID},
				{"Feed URL", stream.FeedURL},
				{"Basic Auth User", valueOrNA(stream.BasicAuthUser)},
				{"Created", stream.CreatedAt},
				{"Updated", stream.UpdatedAt},
			}

			for _, field := range stream.DataStreamFields.Items() {
				rows = append(rows, []string{"Field " + field.Name, field.Path})
			}

			return rows
		},
		Get: func(ctx context.Context, client emsearch.Client, id string, params *emsearch.GetParams) (*emsearch.Response[emsearch.DataStream], error) {
			return client.DataStreams().Get(ctx, id, params)
		},
	}))
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Resource: "data stream",
		Arg:      "DATA_STREAM_ID",
		Delete: func(ctx context.Context, client emsearch.Client, id string) (*emsearch.ErrorResponse, error) {
			return client.DataStreams().Delete(ctx, id)
		},
	}))

	return cmd
}
