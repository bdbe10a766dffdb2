// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package daynight holds the widget state and its pure update functions.
//
// State is a small value type (mode + raw slider position). An Engine combines
// a palette, a Policy and a text color strategy; its methods take a State and
// return a new State or the Frame to draw. Nothing in this package keeps
// global state or performs I/O.
//
// # Policies
//
//   - PolicyReinterpret: the mode flips how the slider is read
//     (effective = 100 - raw in night mode); toggling never moves the slider.
//   - PolicySnap: the slider is read as-is; toggling moves it to 0 (night)
//     or 100 (day).
//
// # Usage
//
//	eng := daynight.NewEngine(palette.Default(), daynight.PolicyReinterpret, nil)
//	s := daynight.State{Dark: true, Raw: 49}
//	s = eng.Toggle(s)
//	frame := eng.Render(s)
package daynight
