// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JustTzyy/softwear/internal/db"
	"github.com/JustTzyy/softwear/internal/i18n"
)

// maintenanceCmd runs engine-specific housekeeping (VACUUM and friends)
// against the configured database.
var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Run database maintenance tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.RunDBMaintenance(appConfig.Database.Type, appConfig.Database.DSN); err != nil {
			return fmt.Errorf("%s: %w", i18n.T("maintenance.failed"), err)
		}
		fmt.Println(i18n.T("maintenance.success"))
		return nil
	},
}
