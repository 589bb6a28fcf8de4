package ui

import (
	"image/color"

	"github.com/automoto/ninja-platformer/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LevelEntry is one row of the level select.
type LevelEntry struct {
	Title     string
	Unlocked  bool
	Completed bool
}

type LevelSelectUI struct {
	UI *ebitenui.UI

	OnSelect func(index int)
	OnGoBack func()

	checkmark *ebiten.Image

	titleFace  text.Face
	normalFace text.Face
}

// NewLevelSelectUI builds one button per level. Locked levels are disabled
// and completed levels carry the check mark image.
func NewLevelSelectUI(entries []LevelEntry, checkmark *ebiten.Image, onSelect func(index int), onGoBack func()) *LevelSelectUI {
	ui := &LevelSelectUI{
		OnSelect:   onSelect,
		OnGoBack:   onGoBack,
		checkmark:  checkmark,
		titleFace:  fonts.Title.Face(),
		normalFace: fonts.Regular.Face(),
	}
	ui.buildUI(entries)
	return ui
}

func (ui *LevelSelectUI) buildUI(entries []LevelEntry) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SELECT LEVEL", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	for i, entry := range entries {
		contentContainer.AddChild(ui.buildRow(i, entry))
	}

	contentContainer.AddChild(ui.newButton("Back", 80, backButton, ui.OnGoBack))
	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// buttonStyle is the fill of a button in each state plus its label colours.
type buttonStyle struct {
	fill  [4]color.RGBA // idle, hover, pressed, disabled
	label [4]color.RGBA
}

var (
	levelButton = buttonStyle{
		fill:  [4]color.RGBA{{40, 100, 40, 255}, {60, 140, 60, 255}, {30, 80, 30, 255}, {40, 40, 40, 255}},
		label: [4]color.RGBA{{255, 255, 255, 255}, {200, 255, 200, 255}, {150, 200, 150, 255}, {100, 100, 100, 255}},
	}
	backButton = buttonStyle{
		fill:  [4]color.RGBA{{60, 60, 80, 255}, {80, 80, 100, 255}, {40, 40, 60, 255}, {40, 40, 40, 255}},
		label: [4]color.RGBA{{255, 255, 255, 255}, {255, 200, 200, 255}, {200, 150, 150, 255}, {100, 100, 100, 255}},
	}
)

func (ui *LevelSelectUI) newButton(label string, minWidth int, style buttonStyle, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(style.fill[0]),
			Hover:    image.NewNineSliceColor(style.fill[1]),
			Pressed:  image.NewNineSliceColor(style.fill[2]),
			Disabled: image.NewNineSliceColor(style.fill[3]),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     style.label[0],
			Hover:    style.label[1],
			Pressed:  style.label[2],
			Disabled: style.label[3],
		}),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// buildRow lays out a level button followed by the check mark of a
// completed level.
func (ui *LevelSelectUI) buildRow(index int, entry LevelEntry) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	btn := ui.newButton(entry.Title, 140, levelButton, func() {
		if ui.OnSelect != nil {
			ui.OnSelect(index)
		}
	})
	btn.GetWidget().Disabled = !entry.Unlocked
	row.AddChild(btn)

	if entry.Completed && ui.checkmark != nil {
		row.AddChild(widget.NewGraphic(
			widget.GraphicOpts.Image(ui.checkmark),
			widget.GraphicOpts.WidgetOpts(widget.WidgetOpts.MinSize(16, 16)),
		))
	}
	return row
}

func (ui *LevelSelectUI) Update() {
	ui.UI.Update()
}
