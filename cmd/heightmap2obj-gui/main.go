package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/heightmap2obj/internal/config"
	"github.com/philipparndt/heightmap2obj/internal/convert"
	"github.com/philipparndt/heightmap2obj/internal/logger"
	"github.com/philipparndt/heightmap2obj/pkg/heightmap"
	"github.com/philipparndt/heightmap2obj/pkg/mesh"
)

// slider bounds for scale and max height
const (
	sliderMin  = 0.1
	sliderMax  = 10
	sliderStep = 0.1
)

type App struct {
	window fyne.Window
	cfg    *config.Config

	inputEntry    *widget.Entry
	outputEntry   *widget.Entry
	scaleSlider   *widget.Slider
	heightSlider  *widget.Slider
	convertButton *widget.Button
	statusLabel   *widget.Label
	logLabel      *widget.Label
	logScroll     *container.Scroll
}

func main() {
	cfg, _, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cfg = config.Default()
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	defer logger.Sync()

	a := app.New()
	w := a.NewWindow("Heightmap to OBJ Converter")

	appInstance := &App{
		window: w,
		cfg:    cfg,
	}
	appInstance.setupUI()

	if len(os.Args) > 1 {
		appInstance.selectInput(os.Args[1])
	}

	w.Resize(fyne.NewSize(640, 480))
	w.ShowAndRun()
}

func (a *App) setupUI() {
	a.inputEntry = widget.NewEntry()
	a.inputEntry.SetPlaceHolder("Heightmap image")
	a.outputEntry = widget.NewEntry()
	a.outputEntry.SetPlaceHolder("Output OBJ file")

	inputRow := container.NewBorder(nil, nil, nil,
		widget.NewButton("Browse...", a.browseInput), a.inputEntry)
	outputRow := container.NewBorder(nil, nil, nil,
		widget.NewButton("Browse...", a.browseOutput), a.outputEntry)

	var scaleRow, heightRow fyne.CanvasObject
	a.scaleSlider, scaleRow = newParamSlider(a.cfg.Mesh.Scale)
	a.heightSlider, heightRow = newParamSlider(a.cfg.Mesh.MaxHeight)

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Input Heightmap:"), inputRow,
		widget.NewLabel("Output OBJ File:"), outputRow,
		widget.NewLabel("Scale:"), scaleRow,
		widget.NewLabel("Max Height:"), heightRow,
	)

	a.convertButton = widget.NewButton("Convert to OBJ", a.convert)
	a.convertButton.Importance = widget.HighImportance

	a.statusLabel = widget.NewLabel("Ready")
	a.logLabel = widget.NewLabel("")
	a.logLabel.Wrapping = fyne.TextWrapWord
	a.logLabel.TextStyle = fyne.TextStyle{Monospace: true}
	a.logScroll = container.NewVScroll(a.logLabel)
	a.logScroll.SetMinSize(fyne.NewSize(0, 200))

	top := container.NewVBox(
		form,
		container.NewCenter(a.convertButton),
		container.NewHBox(widget.NewLabel("Status:"), a.statusLabel),
	)

	a.window.SetContent(container.NewBorder(top, nil, nil, nil, a.logScroll))
}

// newParamSlider creates a slider over the UI range with a value label
func newParamSlider(value float64) (*widget.Slider, fyne.CanvasObject) {
	slider := widget.NewSlider(sliderMin, sliderMax)
	slider.Step = sliderStep

	value = min(max(value, sliderMin), sliderMax)
	valueLabel := widget.NewLabel(fmt.Sprintf("%.1f", value))
	slider.OnChanged = func(v float64) {
		valueLabel.SetText(fmt.Sprintf("%.1f", v))
	}
	slider.SetValue(value)

	return slider, container.NewBorder(nil, nil, nil, valueLabel, slider)
}

func (a *App) browseInput() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.selectInput(reader.URI().Path())
	}, a.window)
	fd.SetFilter(storage.NewExtensionFileFilter(heightmap.SupportedExtensions))
	fd.Show()
}

// selectInput sets the input path and suggests an output path next to it
func (a *App) selectInput(path string) {
	a.inputEntry.SetText(path)
	a.outputEntry.SetText(convert.DefaultOutputPath(path))
	a.updateStatus(fmt.Sprintf("Selected: %s", filepath.Base(path)))
}

func (a *App) browseOutput() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		// the converter replaces the file atomically, only the path is needed
		writer.Close()

		a.outputEntry.SetText(writer.URI().Path())
	}, a.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".obj"}))
	if out := a.outputEntry.Text; out != "" {
		fd.SetFileName(filepath.Base(out))
	} else {
		fd.SetFileName("heightmap.obj")
	}
	fd.Show()
}

// updateStatus shows message in the status line and appends it to the log.
// Must be called on the UI goroutine.
func (a *App) updateStatus(message string) {
	a.statusLabel.SetText(strings.SplitN(message, "\n", 2)[0])
	a.logLabel.SetText(a.logLabel.Text + message + "\n")
	a.logScroll.ScrollToBottom()
}

func (a *App) convert() {
	req := convert.Request{
		InputPath:  strings.TrimSpace(a.inputEntry.Text),
		OutputPath: strings.TrimSpace(a.outputEntry.Text),
		Params: mesh.Params{
			Scale:     a.scaleSlider.Value,
			MaxHeight: a.heightSlider.Value,
		},
	}
	opts := convert.Options{Workers: a.cfg.Mesh.Workers, Strict: a.cfg.Mesh.Strict}

	reporter := convert.ReporterFunc(func(message string) {
		fyne.Do(func() { a.updateStatus(message) })
	})

	a.convertButton.Disable()
	go func() {
		summary, err := convert.Run(context.Background(), req, opts, reporter)
		fyne.Do(func() {
			a.convertButton.Enable()
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			dialog.ShowInformation("Success", summary.String(), a.window)
		})
	}()
}
