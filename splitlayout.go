// Two-pane splitter layout tool.
//
// Loads a splitter session, runs one allocation pass and prints the children bounds.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jmigpin/splitter/util/fswatcher"
	"github.com/jmigpin/splitter/util/splitsession"
	"github.com/jmigpin/splitter/util/uiutil/widget"
)

func main() {
	log.SetFlags(log.Llongfile)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

//----------

type options struct {
	session  string
	name     string
	size     image.Point
	at       image.Point
	children string
	watch    bool
}

func parseOptions(args []string, out io.Writer) (*options, error) {
	fs := flag.NewFlagSet("splitlayout", flag.ContinueOnError)
	fs.SetOutput(out)
	opt := &options{}
	fs.StringVar(&opt.session, "session", "", "sessions file (.json, .toml, .yaml)")
	fs.StringVar(&opt.name, "name", "", "session name, defaults to the first session in the file")
	size := fs.String("size", "800x400", "container size WxH")
	at := fs.String("at", "0,0", "container position X,Y")
	fs.StringVar(&opt.children, "children", "11", "first and second child: 1=visible, 0=hidden, -=empty slot")
	fs.BoolVar(&opt.watch, "watch", false, "allocate again when the sessions file changes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	opt.size, err = parsePoint(*size, "x")
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}
	opt.at, err = parsePoint(*at, ",")
	if err != nil {
		return nil, fmt.Errorf("at: %w", err)
	}
	if len(opt.children) != 2 || strings.Trim(opt.children, "01-") != "" {
		return nil, fmt.Errorf("children: bad value: %q", opt.children)
	}
	if opt.watch && opt.session == "" {
		return nil, fmt.Errorf("watch: missing session file")
	}
	return opt, nil
}

func parsePoint(s, sep string) (image.Point, error) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		return image.Point{}, fmt.Errorf("bad value: %q", s)
	}
	x, err := strconv.Atoi(a)
	if err != nil {
		return image.Point{}, err
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return image.Point{}, err
	}
	return image.Point{x, y}, nil
}

//----------

func run(args []string, out io.Writer) error {
	opt, err := parseOptions(args, out)
	if err != nil {
		return err
	}
	if err := allocate(opt, out); err != nil {
		return err
	}
	if !opt.watch {
		return nil
	}
	return watch(opt, out)
}

func watch(opt *options, out io.Writer) error {
	fw, err := fswatcher.NewFileWatcher(opt.session)
	if err != nil {
		return err
	}
	defer fw.Close()
	fw.SetOpMask(fswatcher.Create | fswatcher.Modify)

	for v := range fw.Events() {
		switch ev := v.(type) {
		case error:
			log.Print(ev)
		case *fswatcher.Event:
			if err := allocate(opt, out); err != nil {
				// keep watching, the file might be half written
				log.Print(err)
			}
		}
	}
	return nil
}

func allocate(opt *options, out io.Writer) error {
	sp, err := newSplitter(opt)
	if err != nil {
		return err
	}

	// attach both children, then empty the "-" slots so a lone second child stays second
	vis := [2]bool{}
	for i, c := range opt.children {
		slot := sp.Attach(i + 1)
		vis[slot] = c == '1'
	}
	for i, c := range opt.children {
		if c != '-' {
			continue
		}
		if i == 0 {
			sp.RemoveFirst()
		} else {
			sp.RemoveSecond()
		}
	}

	r := image.Rectangle{opt.at, opt.at.Add(opt.size)}
	a := sp.Allocate(r, vis[0], vis[1])
	for _, slot := range []widget.Slot{widget.SlotFirst, widget.SlotSecond} {
		if cr, ok := a.Rect(slot); ok {
			fmt.Fprintf(out, "%v: %v\n", slot, cr)
		}
	}
	fmt.Fprintf(out, "proportion: %.4f\n", sp.Proportion())
	return nil
}

func newSplitter(opt *options) (*widget.Splitter, error) {
	sp := widget.NewSplitter(widget.Horizontal)
	if opt.session == "" {
		return sp, nil
	}
	ss, err := splitsession.Read(opt.session)
	if err != nil {
		return nil, err
	}
	var s *splitsession.Session
	if opt.name != "" {
		s2, ok := ss.Get(opt.name)
		if !ok {
			return nil, fmt.Errorf("session not found: %v", opt.name)
		}
		s = s2
	} else if len(ss.Sessions) > 0 {
		s = ss.Sessions[0]
	}
	if s != nil {
		if err := s.Restore(sp); err != nil {
			return nil, err
		}
	}
	return sp, nil
}
