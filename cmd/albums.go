package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tupyy/parcm/internal/config"
	"github.com/tupyy/parcm/internal/models"
	"github.com/tupyy/parcm/internal/services"
)

func NewAlbumsCommand(cfg *config.Configuration) *cobra.Command {
	var params services.AlbumListParams

	cmd := &cobra.Command{
		Use:   "albums",
		Short: "List the album catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			res, err := services.NewAlbumService(st).List(cmd.Context(), params)
			if err != nil {
				return err
			}

			printAlbums(cmd.OutOrStdout(), res.Albums)
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d albums\n", len(res.Albums), res.Total)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&params.Artists, "artist", nil, "only list albums by these artists")
	cmd.Flags().StringVar(&params.Title, "title", "", "only list albums whose title contains this text")
	cmd.Flags().Uint64Var(&params.Limit, "limit", 0, "maximum number of albums, 0 for all")

	return cmd
}

func printAlbums(out io.Writer, albums []models.Album) {
	header := color.New(color.Bold)
	index := color.New(color.FgCyan)
	missing := color.New(color.FgRed).SprintFunc()

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header.Sprint("INDEX\tTITLE\tARTIST\tCOVER\tTRACK"))
	for _, a := range albums {
		cover, track := a.CoverPath, a.TrackPath
		if cover == "" {
			cover = missing("none")
		}
		if track == "" {
			track = missing("none")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", index.Sprint(a.Index), a.Title, a.Artist, cover, track)
	}
	w.Flush()
}
