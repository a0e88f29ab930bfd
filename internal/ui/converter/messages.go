// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package converter

import "github.com/jeranaias/unitconv/internal/config"

// ConfigReloadedMsg carries a configuration re-read from disk. Precision
// and theme apply immediately; other settings need a restart.
type ConfigReloadedMsg struct {
	Config *config.Config
}
