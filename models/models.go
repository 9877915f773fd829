// SPDX-License-Identifier: GPL-3.0-only

package models

// AllModels lists every model managed by AutoMigrate.
var AllModels []any
