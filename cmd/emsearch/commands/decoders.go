package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// NewDecodersCommand creates the decoders command group
func NewDecodersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decoders",
		Aliases: []string{"decoder"},
		Short:   "List data stream decoders",
		Long:    "List and inspect the feed formats the service can decode",
	}

	cmd.AddCommand(createListCommand(ListConfig[emsearch.DataStreamDecoder]{
		Resource: "decoders",
		Header:   []string{"ID", "Name", "Class", "MIME Type"},
		Row: func(decoder emsearch.DataStreamDecoder) []string {
			return []string{decoder.ID, decoder.Name, decoder.ClassName, decoder.FileMimeType}
		},
		List: func(ctx context.Context, client emsearch.Client, cmd *cobra.Command, params emsearch.ListParams) (*emsearch.ListResponse[emsearch.DataStreamDecoder], error) {
			return client.DataStreamDecoders().All(ctx, &emsearch.DataStreamDecoderListParams{ListParams: params})
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[emsearch.DataStreamDecoder]{
		Resource: "decoder",
		Arg:      "DECODER_ID",
		Details: func(decoder *emsearch.DataStreamDecoder) [][]string {
			return [][]string{
				{"ID", decoder.ID},
				{"Name", decoder.Name},
				{"Class", decoder.ClassName},
				{"MIME Type", decoder.FileMimeType},
				{"Created", decoder.CreatedAt},
				{"Updated", decoder.UpdatedAt},
			}
		},
		Get: func(ctx context.Context, client emsearch.Client, id string, params *emsearch.GetParams) (*emsearch.Response[emsearch.DataStreamDecoder], error) {
			return client.DataStreamDecoders().Get(ctx, id, params)
		},
	}))

	return cmd
}
