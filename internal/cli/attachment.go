package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/caseflow/internal/wire"
)

// AttachmentCmd returns the attachment command
func AttachmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attachment",
		Short: "Manage PDF attachments",
		Long:  `Upload, list, download, and delete the PDF attachments of a case.`,
	}

	cmd.AddCommand(attachmentAddCmd())
	cmd.AddCommand(attachmentListCmd())
	cmd.AddCommand(attachmentDownloadCmd())
	cmd.AddCommand(attachmentDeleteCmd())

	return cmd
}

func attachmentAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [case-id] [file]",
		Short: "Upload a PDF to a case",
		Long: `Upload a local PDF file to a case.

Examples:
  caseflow attachment add 3 ./antrag.pdf`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actorID, err := resolveActor(cmd)
			if err != nil {
				return err
			}
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}

			return wire.AttachmentAdapter().Add(context.Background(), caseID, actorID, args[1])
		},
	}

	addActorFlag(cmd)
	return cmd
}

func attachmentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [case-id]",
		Short: "List the attachments of a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}

			return wire.AttachmentAdapter().List(context.Background(), caseID)
		},
	}
}

func attachmentDownloadCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "download [attachment-id]",
		Short: "Download an attachment",
		Long:  `Download the stored bytes of an attachment. Without --out, the original file name is used.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attachmentID, err := parseID(args[0], "attachment id")
			if err != nil {
				return err
			}

			return wire.AttachmentAdapter().Download(context.Background(), attachmentID, target)
		},
	}

	cmd.Flags().StringVar(&target, "out", "", "target file path")
	return cmd
}

func attachmentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [attachment-id]",
		Short: "Delete an attachment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attachmentID, err := parseID(args[0], "attachment id")
			if err != nil {
				return err
			}

			return wire.AttachmentAdapter().Delete(context.Background(), attachmentID)
		},
	}
}
