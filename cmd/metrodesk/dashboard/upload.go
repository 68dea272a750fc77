package dashboard

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"metrodesk/cmd/metrodesk/ui"
	"metrodesk/internal/format"
	"metrodesk/internal/portal"
)

// uploadWidget is one upload surface: a path entry field plus a busy
// flag. The sidebar and the Documents panel each own an instance; both
// funnel into the same filtered pipeline on the shell.
type uploadWidget struct {
	input textinput.Model
	busy  bool
}

func newUploadWidget(styles ui.Styles, placeholder string) uploadWidget {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "> "
	input.PromptStyle = styles.Prompt
	input.CharLimit = 512
	input.Width = 40
	return uploadWidget{input: input}
}

func (w uploadWidget) update(msg tea.Msg) (uploadWidget, tea.Cmd) {
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

// statFiles resolves typed paths into file descriptors. Any missing or
// unreadable path fails the whole batch.
func statFiles(paths []string) ([]portal.FileInfo, error) {
	files := make([]portal.FileInfo, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", filepath.Base(p), err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", filepath.Base(p))
		}
		files = append(files, portal.FileInfo{
			Name:        filepath.Base(p),
			Size:        info.Size(),
			ContentType: contentTypeFor(p),
		})
	}
	return files, nil
}

func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// submitPaths parses the widget's path field and kicks off an upload.
func (m *Model) submitPaths(src uploadSource) tea.Cmd {
	w := m.widgetFor(src)
	paths := strings.Fields(w.input.Value())
	if len(paths) == 0 {
		return nil
	}
	files, err := statFiles(paths)
	if err != nil {
		return m.showToast(toastError, err.Error())
	}
	w.input.Reset()
	return m.startUpload(src, files)
}

// startUpload filters the batch down to accepted content types and issues
// the backend call. A busy surface ignores re-submission. A batch with no
// accepted files produces only the rejection notice; rejected files in a
// mixed batch are dropped silently.
func (m *Model) startUpload(src uploadSource, files []portal.FileInfo) tea.Cmd {
	w := m.widgetFor(src)
	if w.busy || len(files) == 0 {
		return nil
	}
	accepted, _ := portal.FilterAccepted(files)
	if len(accepted) == 0 {
		return m.showToast(toastError, "Invalid file type. Please upload PDF files only.")
	}
	w.busy = true
	return tea.Batch(m.uploadCmd(src, accepted), m.spinner.Tick)
}

// finishUpload lands a completed batch in the aggregator. Batches issued
// under a previous session are dropped: logout is a hard boundary, and a
// late completion must not seed the next user's store or raise a toast.
func (m *Model) finishUpload(msg uploadDoneMsg) tea.Cmd {
	if msg.gen != m.sessionGen {
		return nil
	}
	m.widgetFor(msg.source).busy = false
	if msg.err != nil {
		m.logger.Error("upload failed", zap.Error(msg.err))
		return m.showToast(toastError, "Upload failed. Please try again.")
	}
	m.docs.AppendBatch(msg.docs)
	m.logger.Info("documents uploaded", zap.Int("count", len(msg.docs)))
	n := len(msg.docs)
	return m.showToast(toastSuccess,
		fmt.Sprintf("%d %s uploaded successfully.", n, format.Plural(n, "document")))
}
