package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quicknotes/pkg/adapters/s3"
	"github.com/aretw0/quicknotes/pkg/archive"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		dir   string
		s3cfg = s3.ConfigFromEnv()
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every note as a Markdown file",
		Long: `Export writes one Markdown file per note, with the note fields in a YAML
frontmatter block. The destination is a local directory (--dir) or an
S3-compatible bucket (--s3-bucket, or QUICKNOTES_S3_BUCKET).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var sink archive.Sink
			switch {
			case dir != "" && s3cfg.Bucket != "":
				return usageErrorf("destination", "--dir and --s3-bucket are mutually exclusive")
			case dir != "":
				sink = archive.DirSink{Dir: dir}
			case s3cfg.Bucket != "":
				s, err := s3.New(ctx, s3cfg)
				if err != nil {
					return err
				}
				sink = s
			default:
				return usageErrorf("destination", "an export destination is required: --dir or --s3-bucket")
			}

			svc, err := a.service(ctx)
			if err != nil {
				return err
			}
			notes, err := svc.ListNotes(ctx)
			if err != nil {
				return err
			}
			count, err := archive.Export(ctx, notes, sink)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes\n", count)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&dir, "dir", "", "Local directory to write into")
	flags.StringVar(&s3cfg.Bucket, "s3-bucket", s3cfg.Bucket, "Destination bucket")
	flags.StringVar(&s3cfg.Prefix, "s3-prefix", s3cfg.Prefix, "Key prefix inside the bucket")
	flags.StringVar(&s3cfg.Region, "s3-region", s3cfg.Region, "Bucket region")
	flags.StringVar(&s3cfg.Endpoint, "s3-endpoint", s3cfg.Endpoint, "Custom endpoint, e.g. a MinIO URL")
	flags.BoolVar(&s3cfg.PathStyle, "s3-path-style", s3cfg.PathStyle, "Use path-style addressing")
	return cmd
}

func init() {
	commands = append(commands, newExportCmd)
}
