// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/JustTzyy/softwear/internal/audit"
	"github.com/JustTzyy/softwear/internal/db"
	"github.com/JustTzyy/softwear/internal/i18n"
	"github.com/JustTzyy/softwear/internal/model"
)

// filterFromFlags assembles the audit query criteria from the shared flag set.
func filterFromFlags(cmd *cobra.Command) (model.AuditLogFilter, error) {
	var f model.AuditLogFilter

	if actor, _ := cmd.Flags().GetInt64("actor"); actor > 0 {
		f.ActorID = &actor
	}
	f.Search, _ = cmd.Flags().GetString("search")
	f.Status, _ = cmd.Flags().GetString("status")
	f.Module, _ = cmd.Flags().GetString("module")
	f.Page, _ = cmd.Flags().GetInt("page")
	f.PageSize, _ = cmd.Flags().GetInt("page-size")

	for _, bound := range []struct {
		flag string
		dst  **time.Time
	}{
		{"from", &f.From},
		{"to", &f.To},
	} {
		raw, _ := cmd.Flags().GetString(bound.flag)
		if raw == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, fmt.Errorf("invalid --%s date %q (want YYYY-MM-DD): %w", bound.flag, raw, err)
		}
		*bound.dst = &t
	}

	return f, nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("actor", 0, "Only entries recorded by this user id")
	cmd.Flags().String("search", "", "Substring match against description, status, and module")
	cmd.Flags().String("status", "", "Exact status filter")
	cmd.Flags().String("module", "", "Exact module filter")
	cmd.Flags().String("from", "", "Inclusive start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Inclusive end date (YYYY-MM-DD)")
	cmd.Flags().Int("page", 1, "1-based page number")
	cmd.Flags().Int("page-size", audit.DefaultPageSize, "Entries per page")
}

// newAuditCmd builds the 'audit' command tree.
func newAuditCmd() *cobra.Command {
	auditCmd := &cobra.Command{
		Use:   "audit",
		Short: "Browse and export the audit history",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List audit entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filterFromFlags(cmd)
			if err != nil {
				return err
			}

			browser := audit.NewBrowser(db.DefaultStore())
			entries, total, err := browser.Query(cmd.Context(), f)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(i18n.T("audit.none_found"))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				i18n.T("audit.header.timestamp"), i18n.T("audit.header.actor"),
				i18n.T("audit.header.role"), i18n.T("audit.header.status"),
				i18n.T("audit.header.module"), i18n.T("audit.header.description"))
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.Timestamp.Format("2006-01-02 15:04:05"),
					e.ActorName, e.ActorRole, e.Status, e.Module, e.Description)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("%d %s\n", total, i18n.T("audit.total"))
			return nil
		},
	}
	addFilterFlags(listCmd)

	statusesCmd := &cobra.Command{
		Use:   "statuses",
		Short: "List the distinct statuses present in the audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFacet(cmd, "status")
		},
	}
	statusesCmd.Flags().Int64("actor", 0, "Only facets of entries recorded by this user id")

	modulesCmd := &cobra.Command{
		Use:   "modules",
		Short: "List the distinct modules present in the audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFacet(cmd, "module")
		},
	}
	modulesCmd.Flags().Int64("actor", 0, "Only facets of entries recorded by this user id")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered audit history as compressed JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filterFromFlags(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")

			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer func() { _ = file.Close() }()

			browser := audit.NewBrowser(db.DefaultStore())
			if err := audit.Export(cmd.Context(), browser, f, file); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", i18n.T("audit.export_written"), out)
			return nil
		},
	}
	addFilterFlags(exportCmd)
	exportCmd.Flags().String("out", "audit-export.json.zst", "Output file path")

	auditCmd.AddCommand(listCmd)
	auditCmd.AddCommand(statusesCmd)
	auditCmd.AddCommand(modulesCmd)
	auditCmd.AddCommand(exportCmd)
	return auditCmd
}

func runFacet(cmd *cobra.Command, kind string) error {
	var actorID *int64
	if actor, _ := cmd.Flags().GetInt64("actor"); actor > 0 {
		actorID = &actor
	}

	browser := audit.NewBrowser(db.DefaultStore())
	var values []string
	var err error
	if kind == "status" {
		values, err = browser.Statuses(cmd.Context(), actorID)
	} else {
		values, err = browser.Modules(cmd.Context(), actorID)
	}
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(values, "\n"))
	return nil
}
