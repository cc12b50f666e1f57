// Package ui draws the heads-up panels and the viewer button bar.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	TitleColor  rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	HintColor   rl.Color
	BarBg       rl.Color
	BarFill     rl.Color

	Padding    int32
	LineHeight int32
	LabelWidth int32
	BarHeight  int32
	FontSize   int32
	TitleSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:     rl.Color{R: 20, G: 25, B: 30, A: 200},
		PanelBorder: rl.Color{R: 60, G: 70, B: 80, A: 255},
		TitleColor:  rl.White,
		LabelColor:  rl.LightGray,
		ValueColor:  rl.RayWhite,
		HintColor:   rl.Gray,
		BarBg:       rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:     rl.Color{R: 100, G: 150, B: 200, A: 255},
		Padding:     10,
		LineHeight:  16,
		LabelWidth:  90,
		BarHeight:   10,
		FontSize:    12,
		TitleSize:   16,
	}
}
