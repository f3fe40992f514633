package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	v1 "github.com/tupyy/parcm/api/v1"
	"github.com/tupyy/parcm/pkg/client"
)

func NewPlayerCommand() *cobra.Command {
	var serverURL string

	newClient := func() (*client.Client, error) {
		return client.NewClient(serverURL)
	}

	cmd := &cobra.Command{
		Use:   "player",
		Short: "Control a running player",
	}
	cmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "url of a running parcm")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show what is playing",
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				s, err := c.Status(cmd.Context())
				if err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), s)
				return nil
			},
		},
		&cobra.Command{
			Use:   "next",
			Short: "Request the next album",
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				idx, err := c.Next(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "requested album %d\n", idx)
				return nil
			},
		},
		&cobra.Command{
			Use:   "prev",
			Short: "Request the previous album",
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				idx, err := c.Prev(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "requested album %d\n", idx)
				return nil
			},
		},
		&cobra.Command{
			Use:   "play <index>",
			Short: "Request a specific album",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				idx, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid album index %q", args[0])
				}
				c, err := newClient()
				if err != nil {
					return err
				}
				if err := c.Play(cmd.Context(), idx); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "requested album %d\n", idx)
				return nil
			},
		},
	)

	return cmd
}

func printStatus(out io.Writer, s *v1.PlayerStatus) {
	state := color.New(color.FgYellow)
	if s.State == v1.PlayerStatePlaying {
		state = color.New(color.FgGreen)
	}

	fmt.Fprintf(out, "state:    %s\n", state.Sprint(s.State))
	if s.NowPlaying != nil {
		a := s.NowPlaying.Album
		title := a.Title
		if a.Artist != "" {
			title = a.Artist + " - " + a.Title
		}
		fmt.Fprintf(out, "playing:  %d %s\n", a.Index, title)
		if t := s.NowPlaying.Track; t != nil {
			fmt.Fprintf(out, "track:    %s %dHz %dch\n", t.Duration, t.SampleRate, t.Channels)
		}
		if len(s.NowPlaying.Degraded) > 0 {
			fmt.Fprintf(out, "degraded: %s\n", color.RedString(strings.Join(s.NowPlaying.Degraded, ", ")))
		}
	}
	if s.Loading != nil {
		fmt.Fprintf(out, "loading:  %d\n", *s.Loading)
	}
	if s.Requested != nil {
		fmt.Fprintf(out, "queued:   %d\n", *s.Requested)
	}
	if s.Error != nil {
		fmt.Fprintf(out, "error:    %s\n", color.RedString(*s.Error))
	}
	fmt.Fprintf(out, "pool:     %d/%d busy, %d pending\n", s.Pool.Active, s.Pool.Workers, s.Pool.Pending)
}
