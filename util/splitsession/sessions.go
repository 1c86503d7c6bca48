// Named splitter sessions saved to disk.
//
// The file format is chosen by the file extension: ".toml", ".yaml"/".yml", and json otherwise.
package splitsession

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmigpin/splitter/util/uiutil/widget"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Sessions struct {
	Sessions []*Session `json:"sessions" toml:"sessions" yaml:"sessions"`
}

type Session struct {
	Name            string  `json:"name" toml:"name" yaml:"name"`
	Orientation     string  `json:"orientation" toml:"orientation" yaml:"orientation"`
	SizeMode        string  `json:"sizeMode" toml:"sizeMode" yaml:"sizeMode"`
	Proportion      float64 `json:"proportion" toml:"proportion" yaml:"proportion"`
	FirstChildSize  int     `json:"firstChildSize" toml:"firstChildSize" yaml:"firstChildSize"`
	SecondChildSize int     `json:"secondChildSize" toml:"secondChildSize" yaml:"secondChildSize"`
	HandleSize      int     `json:"handleSize" toml:"handleSize" yaml:"handleSize"`
}

//----------

func NewSession(name string, sp *widget.Splitter) *Session {
	return &Session{
		Name:            name,
		Orientation:     sp.Orientation().String(),
		SizeMode:        sp.SizeMode().String(),
		Proportion:      sp.Proportion(),
		FirstChildSize:  sp.ChildSize(widget.SlotFirst),
		SecondChildSize: sp.ChildSize(widget.SlotSecond),
		HandleSize:      sp.HandleSize(),
	}
}

// Applies the session to the splitter. The splitter is not changed if the session has bad values.
func (s *Session) Restore(sp *widget.Splitter) error {
	o, err := widget.ParseOrientation(s.Orientation)
	if err != nil {
		return fmt.Errorf("session %q: %w", s.Name, err)
	}
	m, err := widget.ParseSizeMode(s.SizeMode)
	if err != nil {
		return fmt.Errorf("session %q: %w", s.Name, err)
	}
	if s.FirstChildSize < 0 || s.SecondChildSize < 0 || s.HandleSize < 0 {
		return fmt.Errorf("session %q: negative size", s.Name)
	}

	sp.SetHandleSize(s.HandleSize)
	sp.SetOrientation(o)
	// the proportion can only be set in the proportional mode
	sp.SetSizeMode(widget.SizeModeProportional)
	sp.SetProportion(s.Proportion)
	sp.SetChildSize(widget.SlotFirst, s.FirstChildSize)
	sp.SetChildSize(widget.SlotSecond, s.SecondChildSize)
	sp.SetSizeMode(m)
	return nil
}

//----------

func (ss *Sessions) Get(name string) (*Session, bool) {
	for _, s := range ss.Sessions {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Replaces the session with the same name, or appends.
func (ss *Sessions) Set(s1 *Session) {
	for i, s := range ss.Sessions {
		if s.Name == s1.Name {
			ss.Sessions[i] = s1
			return
		}
	}
	ss.Sessions = append(ss.Sessions, s1)
}

func (ss *Sessions) Delete(name string) error {
	for i, s := range ss.Sessions {
		if s.Name == name {
			ss.Sessions = append(ss.Sessions[:i], ss.Sessions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("session not found: %v", name)
}

func (ss *Sessions) Names() []string {
	u := make([]string, 0, len(ss.Sessions))
	for _, s := range ss.Sessions {
		u = append(u, s.Name)
	}
	return u
}

//----------

// A missing file returns empty sessions.
func Read(filename string) (*Sessions, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Sessions{}, nil
		}
		return nil, err
	}
	ss := &Sessions{}
	if len(bytes.TrimSpace(b)) == 0 {
		return ss, nil
	}
	if err := codecFor(filename).unmarshal(b, ss); err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return ss, nil
}

func Write(filename string, ss *Sessions) error {
	b, err := codecFor(filename).marshal(ss)
	if err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	return os.WriteFile(filename, b, 0644)
}

//----------

type codec struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

var jsonCodec = codec{
	marshal: func(v any) ([]byte, error) {
		b, err := json.MarshalIndent(v, "", "    ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	},
	unmarshal: json.Unmarshal,
}

var tomlCodec = codec{toml.Marshal, toml.Unmarshal}
var yamlCodec = codec{yaml.Marshal, yaml.Unmarshal}

func codecFor(filename string) codec {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlCodec
	case ".yaml", ".yml":
		return yamlCodec
	default:
		return jsonCodec
	}
}
