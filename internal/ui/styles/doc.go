// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the unitconv terminal UI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection. The ui.theme setting may force one side.

# Colors (colors.go)

  - Purple - Focused controls and panel titles
  - Cyan - Header and key hints
  - Emerald - Successful conversions
  - Rose - Conversion errors
  - Amber - Warnings, journal disabled

# Theme (theme.go)

	theme := styles.NewThemeWithMode(cfg.UI.Theme)
	fmt.Println(theme.Success.Render(styles.StatusIndicators.Success + " " + rec.String()))

Every colored state is paired with a text indicator from StatusIndicators.
*/
package styles
