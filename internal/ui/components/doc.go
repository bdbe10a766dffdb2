// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the UI components of the daynight TUI.

Each component holds only what it displays and renders itself with the
shared styles.Theme, so a single Theme.Apply re-colors all of them.

  - Slider (slider.go) - track with a thumb at the raw value.
  - ToggleButton (toggle.go) - night/day button mirroring aria-pressed.
  - ValueDisplay (value.go) - the raw value as a percentage, e.g. "73%".
  - Panel (panel.go) - bordered box whose text follows the frame text color.
*/
package components
