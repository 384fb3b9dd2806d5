/*
Copyright (c) 2018 Ham, Yeongtaek <yeongtaek.ham@gmail.com>.

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Command ais-go-tui is a live console table of currently tracked
// vessels, built on top of the same pipeline as ais-go.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/jroimartin/gocui"

	"github.com/Regentag/ais-go/internal/ais"
	"github.com/Regentag/ais-go/internal/pipeline"
	"github.com/Regentag/ais-go/internal/receiver"
	"github.com/Regentag/ais-go/internal/track"
)

type context struct {
	table *track.Table
}

func (ctx *context) update(g *gocui.Gui) error {
	s, err := g.View("status")
	if err != nil {
		return err
	}
	s.Clear()
	fmt.Fprintf(s, " vessels: %02d  last update: %s\n",
		ctx.table.Count(), time.Now().Format("2006-01-02 15:04:05"))

	l, err := g.View("list")
	if err != nil {
		return err
	}
	l.Clear()

	fmt.Fprintln(l, "    MMSI      KIND        LON         LAT    SPEED  COURSE  SEEN")
	fmt.Fprintln(l, " ========================================================================")

	vessels := ctx.table.Vessels()
	mmsis := make([]uint32, 0, len(vessels))
	for mmsi := range vessels {
		mmsis = append(mmsis, mmsi)
	}
	sort.Slice(mmsis, func(i, j int) bool { return mmsis[i] < mmsis[j] })

	for _, mmsi := range mmsis {
		e := vessels[mmsi]
		fmt.Fprintf(l, " %9d  %-10s  %9.4f  %9.4f  %5.1f  %5.1f  %s\n",
			mmsi, kindLabel(e.Message.Kind), e.Message.LongitudeDeg, e.Message.LatitudeDeg,
			e.Message.SpeedKmh, e.Message.CourseDeg, e.LastSeen.Format("15:04:05"))
	}

	return nil
}

func kindLabel(k ais.MessageKind) string {
	switch k {
	case ais.KindPosition:
		return "position"
	case ais.KindBaseStation:
		return "base"
	case ais.KindStaticVoyage:
		return "static"
	default:
		return "unknown"
	}
}

func layout(g *gocui.Gui) error {
	const maxX = 80
	_, maxY := g.Size()

	v, err := g.SetView("status", 0, 0, maxX-2, 2)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	if err == nil {
		v.Title = " STATUS "
	}

	v, err = g.SetView("list", 0, 3, maxX-2, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	if err == nil {
		v.Title = " VESSELS "
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func main() {
	host := flag.String("host", "127.0.0.1", "rtl_tcp host")
	port := flag.Int("port", 2345, "rtl_tcp port")
	staleAfter := flag.Duration("stale-after", track.DefaultStaleAfter, "drop a vessel from the table after this long without a report")
	flag.Parse()

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	defer g.Close()

	g.SetManagerFunc(layout)
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}

	ctx := &context{table: track.NewTable(*staleAfter)}

	addr := fmt.Sprintf("%s:%d", *host, *port)
	r, _, err := receiver.Dial(addr)
	if err != nil {
		log.Panicln("error: ", err)
	}
	defer r.Close()

	p := pipeline.New(nil)
	p.OnMessage = func(m ais.Message) {
		ctx.table.Update(m)
		g.Update(ctx.update)
	}

	go func() {
		for {
			buf, err := r.ReadBuffer()
			if err != nil {
				return
			}
			p.ProcessBuffer(buf, len(buf)/2)
		}
	}()

	go func() {
		for range time.Tick(time.Second) {
			ctx.table.RemoveStale()
			g.Update(ctx.update)
		}
	}()

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}
