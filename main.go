package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/peterbourgon/ff"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geofun/api"
	"github.com/a-bouts/geofun/latlon"
	"github.com/a-bouts/geofun/stats"
	"github.com/a-bouts/geofun/track"
	"github.com/a-bouts/geofun/xmpp"
)

// summarize solves the tracks of file at startup and logs their length.
func summarize(file string, modelName string) error {
	m, err := latlon.ModelByName(modelName)
	if err != nil {
		return err
	}
	tracks, err := track.Load(file)
	if err != nil {
		return err
	}
	for _, t := range tracks {
		s, err := track.Legs(context.Background(), m, t)
		if err != nil {
			log.WithField("track", t.Name).Warnf("Skipped: %v", err)
			continue
		}
		log.WithFields(log.Fields{
			"track": s.Name,
			"model": s.Model,
			"legs":  len(s.Legs),
		}).Infof("Distance %.1f m", s.Distance)
	}
	return nil
}

func main() {

	fs := flag.NewFlagSet("geofun", flag.ExitOnError)
	var (
		listen         = fs.String("listen", ":8888", "listen address")
		logLevel       = fs.String("log-level", "info", "log level")
		logFormat      = fs.String("log-format", "text", "log format, text or json")
		cpuprofile     = fs.Bool("cpuprofile", false, "profile track requests")
		reportInterval = fs.Uint64("report-interval", 0, "seconds between stats reports, 0 to disable")
		tracks         = fs.String("tracks", "", "JSON file of tracks summarized at startup")
		tracksModel    = fs.String("tracks-model", "vincenty", "model used for the startup tracks")
		xmppHost       = fs.String("xmpp-host", "", "")
		xmppJid        = fs.String("xmpp-jid", "", "")
		xmppPassword   = fs.String("xmpp-password", "", "")
		xmppTo         = fs.String("xmpp-to", "", "")
		_              = fs.String("config", "", "config file")
	)
	err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("GEOFUN"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := setupLogger(*logLevel, *logFormat); err != nil {
		log.Fatal(err)
	}

	if *tracks != "" {
		if err := summarize(*tracks, *tracksModel); err != nil {
			log.Fatal(err)
		}
	}

	st := stats.New()
	reg := prometheus.NewRegistry()
	if err := st.Register(reg); err != nil {
		log.Fatal(err)
	}

	if *reportInterval > 0 {
		var notifier stats.Notifier
		x := xmpp.Xmpp{Config: xmpp.Config{Host: *xmppHost, Jid: *xmppJid, Password: *xmppPassword, To: *xmppTo}}
		if x.Enabled() {
			notifier = &x
		}
		if _, err := stats.NewReporter(st, notifier).Start(*reportInterval); err != nil {
			log.Fatal(err)
		}
	}

	log.Infof("Start server on %s", *listen)
	log.Fatal(http.ListenAndServe(*listen, api.InitServer(*cpuprofile, st, reg)))
}
