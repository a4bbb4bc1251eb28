// Package gui はGUIを提供します
package gui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"SpotScope/internal/domain/model"
)

// Default window size constants
const (
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 600
)

// 列ごとの既定幅
var columnWidths = [model.ColumnCount]float32{200, 400, 100, 150}

var columnTitles = [model.ColumnCount]string{"名前", "パス", "サイズ", "更新日時"}

// DirectoryValidator は、ディレクトリパスの検証を行うインターフェース
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// Controller は画面イベントの処理先です
type Controller interface {
	OnTextChanged(text string)
	ToggleSort(col model.Column)
	Sort() (model.Column, model.Direction)
	OnRowSelected(index int)
	OnRowActivated(index int)
	Export(dir string)
	Close()
}

// searchEntry は Escape で内容を消去する検索欄です
type searchEntry struct {
	widget.Entry
	onEscape func()
}

func newSearchEntry() *searchEntry {
	e := &searchEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// TypedKey implements fyne.Focusable
func (e *searchEntry) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(ev)
}

// SearchWindow は検索欄、ステータス、結果テーブルからなるメインウィンドウです
type SearchWindow struct {
	window    fyne.Window
	entry     *searchEntry
	status    *widget.Label
	table     *widget.Table
	validator DirectoryValidator
	ctrl      Controller

	mu       sync.Mutex
	rows     []model.ResultRow
	selected int
	sortCol  model.Column
	sortDir  model.Direction
}

// NewSearchWindow は、SearchWindowの新しいインスタンスを作成します
func NewSearchWindow(a fyne.App, validator DirectoryValidator) *SearchWindow {
	w := &SearchWindow{
		window:    a.NewWindow("SpotScope"),
		validator: validator,
		selected:  -1,
	}

	w.entry = newSearchEntry()
	w.entry.SetPlaceHolder("検索する名前を入力...")
	w.entry.onEscape = w.ClearQuery

	w.status = widget.NewLabel("")
	w.table = w.newTable()

	revealButton := widget.NewButton("Finderで表示", w.activateSelected)
	exportButton := widget.NewButton("書き出し...", w.chooseExportDir)

	content := container.NewBorder(
		container.NewVBox(w.entry, w.status),
		container.NewHBox(layout.NewSpacer(), revealButton, exportButton),
		nil, nil,
		w.table,
	)
	w.window.SetContent(container.NewPadded(content))
	w.window.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))
	w.window.CenterOnScreen()

	w.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyF, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		w.FocusSearch()
	})
	w.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		w.activateSelected()
	})
	w.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			w.ClearQuery()
		}
	})

	return w
}

// Bind はイベントの処理先を設定します。ShowAndRun より前に呼ぶ必要があります
func (w *SearchWindow) Bind(ctrl Controller) {
	w.ctrl = ctrl
	w.sortCol, w.sortDir = ctrl.Sort()
	w.entry.OnChanged = ctrl.OnTextChanged
	w.window.SetOnClosed(ctrl.Close)
}

// ShowAndRun はウィンドウを表示し、イベントループを実行します
func (w *SearchWindow) ShowAndRun() {
	w.window.Canvas().Focus(w.entry)
	w.window.ShowAndRun()
}

func (w *SearchWindow) newTable() *widget.Table {
	t := widget.NewTableWithHeaders(
		func() (int, int) {
			w.mu.Lock()
			defer w.mu.Unlock()
			return len(w.rows), model.ColumnCount
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Wrapping = fyne.TextTruncate
			return label
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			col := model.Column(id.Col)
			if col == model.ColumnSize {
				label.Alignment = fyne.TextAlignTrailing
			} else {
				label.Alignment = fyne.TextAlignLeading
			}
			label.SetText(w.cellText(id.Row, col))
		},
	)
	t.ShowHeaderColumn = false
	t.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton("", nil)
	}
	t.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		button := o.(*widget.Button)
		if id.Col < 0 || id.Col >= model.ColumnCount {
			button.SetText("")
			button.OnTapped = nil
			return
		}
		col := model.Column(id.Col)
		button.SetText(w.HeaderText(col))
		button.OnTapped = func() { w.toggleSort(col) }
	}
	t.OnSelected = func(id widget.TableCellID) {
		if id.Row < 0 {
			return
		}
		w.mu.Lock()
		w.selected = id.Row
		w.mu.Unlock()
		if w.ctrl != nil {
			w.ctrl.OnRowSelected(id.Row)
		}
	}
	for col, width := range columnWidths {
		t.SetColumnWidth(col, width)
	}
	return t
}

func (w *SearchWindow) cellText(row int, col model.Column) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if row < 0 || row >= len(w.rows) {
		return ""
	}
	return w.rows[row].Text(col)
}

// HeaderText は列見出しの文字列を返します。ソート中の列には方向を示す記号が付きます
func (w *SearchWindow) HeaderText(col model.Column) string {
	w.mu.Lock()
	defer w.mu.Unlock()

	title := columnTitles[col]
	if col != w.sortCol {
		return title
	}
	if w.sortDir == model.Descending {
		return title + " ▼"
	}
	return title + " ▲"
}

func (w *SearchWindow) toggleSort(col model.Column) {
	if w.ctrl == nil {
		return
	}
	w.ctrl.ToggleSort(col)
	sortCol, sortDir := w.ctrl.Sort()

	w.mu.Lock()
	w.sortCol, w.sortDir = sortCol, sortDir
	w.mu.Unlock()
	w.table.Refresh()
}

func (w *SearchWindow) activateSelected() {
	w.mu.Lock()
	selected := w.selected
	w.mu.Unlock()

	if w.ctrl != nil && selected >= 0 {
		w.ctrl.OnRowActivated(selected)
	}
}

func (w *SearchWindow) chooseExportDir() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, w.window)
			return
		}
		if uri == nil {
			return
		}
		path := uri.Path()
		if err := w.validator.ValidateDirectoryPath(path); err != nil {
			dialog.ShowError(err, w.window)
			return
		}
		if w.ctrl != nil {
			w.ctrl.Export(path)
		}
	}, w.window)
}

// FocusSearch は検索欄にフォーカスし、内容を全選択します
func (w *SearchWindow) FocusSearch() {
	w.window.Canvas().Focus(w.entry)
	w.entry.TypedShortcut(&fyne.ShortcutSelectAll{})
}

// ClearQuery は検索欄を空にします
func (w *SearchWindow) ClearQuery() {
	w.entry.SetText("")
}

// QueryText implements search.View
func (w *SearchWindow) QueryText() string {
	return w.entry.Text
}

// ShowRows implements search.View
func (w *SearchWindow) ShowRows(rows []model.ResultRow) {
	w.mu.Lock()
	w.rows = rows
	w.selected = -1
	w.mu.Unlock()

	w.table.UnselectAll()
	w.table.Refresh()
}

// ShowStatus implements search.View
func (w *SearchWindow) ShowStatus(status string) {
	w.status.SetText(status)
}
