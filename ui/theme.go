package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	backgroundColor = color.RGBA{20, 20, 30, 255}
	panelColor      = color.RGBA{30, 30, 45, 255}
	white           = color.RGBA{255, 255, 255, 255}
	dimText         = color.RGBA{200, 200, 200, 255}
	disabledText    = color.RGBA{100, 100, 100, 255}
	accentText      = color.RGBA{255, 200, 100, 255}
)

// faces is the shared font set every screen embeds.
type faces struct {
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func (f *faces) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	f.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	f.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	f.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

// newScreen returns the full-window root and the centred column content is
// added to.
func newScreen() (root, content *widget.Container) {
	root = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(backgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root.AddChild(content)
	return root, content
}

// newPanel is a padded vertical box on a slightly lighter background.
func newPanel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
}

func newRow(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

func newLabel(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{
			Idle:     c,
			Disabled: disabledText,
		}),
	)
}

// buttonStyle is a base colour plus its hover/pressed variants.
type buttonStyle struct {
	idle, hover, pressed color.RGBA
}

var (
	primaryButton = buttonStyle{
		idle:    color.RGBA{40, 100, 40, 255},
		hover:   color.RGBA{60, 140, 60, 255},
		pressed: color.RGBA{30, 80, 30, 255},
	}
	secondaryButton = buttonStyle{
		idle:    color.RGBA{60, 60, 80, 255},
		hover:   color.RGBA{80, 80, 100, 255},
		pressed: color.RGBA{40, 40, 60, 255},
	}
)

func newButton(label string, face *text.Face, style buttonStyle, minW, minH int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minW, minH)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(style.idle),
			Hover:    image.NewNineSliceColor(style.hover),
			Pressed:  image.NewNineSliceColor(style.pressed),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     white,
			Hover:    color.RGBA{220, 255, 220, 255},
			Pressed:  color.RGBA{180, 200, 180, 255},
			Disabled: disabledText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}
