package xmpp

import (
	"crypto/tls"
	"errors"
	"strings"

	"github.com/mattn/go-xmpp"
	log "github.com/sirupsen/logrus"
)

var ErrMissingConfig = errors.New("missing xmpp config")

type (
	// Config for the notifier.
	Config struct {
		Host     string
		Jid      string
		Password string
		To       string
	}

	Xmpp struct {
		Config Config
	}
)

func serverName(jid string) string {
	if i := strings.Index(jid, "@"); i >= 0 {
		return jid[i+1:]
	}
	return jid
}

func (x Xmpp) Enabled() bool {
	return len(x.Config.Jid) > 0 && len(x.Config.Password) > 0 && len(x.Config.To) > 0
}

func (x Xmpp) options() xmpp.Options {
	host := x.Config.Host
	if len(host) == 0 {
		host = serverName(x.Config.Jid)
	}
	return xmpp.Options{
		Host:          host,
		User:          x.Config.Jid,
		Password:      x.Config.Password,
		NoTLS:         true,
		StartTLS:      true,
		TLSConfig:     &tls.Config{ServerName: serverName(x.Config.Jid)},
		Session:       false,
		Status:        "xa",
		StatusMessage: "geofun",
	}
}

// Send delivers message to the configured recipient.
func (x Xmpp) Send(message string) error {
	if !x.Enabled() {
		return ErrMissingConfig
	}

	log.WithField("to", x.Config.To).Debug("Send xmpp message")
	talk, err := x.options().NewClient()
	if err != nil {
		return err
	}
	defer talk.Close()

	_, err = talk.Send(xmpp.Chat{Remote: x.Config.To, Type: "chat", Text: message})
	return err
}
