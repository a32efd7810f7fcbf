package executor

import "github.com/sirupsen/logrus"

// absent is the registered stand-in for a collaborator with no backend
// at runtime. Every call logs and succeeds without side effects, so
// the affected actions become inert rather than fatal.
type absent struct {
	name string
}

func (a absent) warn(op string) {
	logrus.WithFields(logrus.Fields{
		"collaborator": a.name,
		"op":           op,
	}).Warn("collaborator unavailable, action skipped")
}

func (a absent) SendKey(string, bool) error { a.warn("send_key"); return nil }

func (a absent) Move(int, int, bool) error { a.warn("move"); return nil }

func (a absent) Click(string, int) error { a.warn("click"); return nil }

func (a absent) WriteText(string) error { a.warn("write_text"); return nil }

func (a absent) OpenFile(string) error { a.warn("open_file"); return nil }

func (a absent) OpenURL(string) error { a.warn("open_url"); return nil }

func (a absent) Launch(string, []string) error { a.warn("launch"); return nil }

func (a absent) Switch(string, string) error { a.warn("switch"); return nil }

func (a absent) Run(string, []string) error { a.warn("run"); return nil }
