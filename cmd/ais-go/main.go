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

// Command ais-go connects to an rtl_tcp-compatible IQ source and prints
// decoded AIS position, base-station and static/voyage reports to
// stdout until the connection closes or it is interrupted.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Regentag/ais-go/internal/pipeline"
	"github.com/Regentag/ais-go/internal/receiver"
	"github.com/Regentag/ais-go/internal/sink"
	"github.com/Regentag/ais-go/internal/track"
)

func main() {
	host := flag.String("host", "127.0.0.1", "rtl_tcp host")
	port := flag.Int("port", 2345, "rtl_tcp port")
	dedup := flag.Duration("dedup", track.DefaultTTL, "suppress repeat reports from the same MMSI within this window (0 disables)")
	verbose := flag.Bool("verbose", false, "log per-buffer scan diagnostics")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	addr := fmt.Sprintf("%s:%d", *host, *port)
	r, code, err := receiver.Dial(addr)
	if err != nil {
		log.WithError(err).Error("connect")
		os.Exit(int(code))
	}
	defer r.Close()

	p := pipeline.New(sink.New(os.Stdout))
	p.Log = log
	if *dedup > 0 {
		p.Seen = track.NewSeen(*dedup)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Info("interrupted, closing connection")
		r.Close()
	}()

	started := time.Now()
	for {
		buf, err := r.ReadBuffer()
		if err != nil {
			log.WithFields(logrus.Fields{
				"error":   err,
				"elapsed": time.Since(started),
			}).Info("connection closed")
			return
		}
		p.ProcessBuffer(buf, len(buf)/2)
	}
}
