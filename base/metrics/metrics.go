/*
Package metrics wraps datadog-go to facilitate metric recording.
Naming convention:
  - internal process time: *.time
  - external latency: *.latency
  - error: *.err
*/
package metrics

import (
	"fmt"
	"time"

	"github.com/DataDog/datadog-go/statsd"

	"github.com/wallet-hq/nftflow/base/log"
)

const (
	// rate to pass metrics to the agent, 1 means always
	sampleRate = 1
	// buffered counters before flushing to statsd
	bufferMetrics = 10
)

// Ender finishes a timer started by BumpTime
type Ender interface {
	End()
}

// Service provides the metric recording interface
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

type statsCli interface {
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// New creates a metric client with the package name as key prefix.
// A nil statsd connection degrades to a no-op client so callers never
// need to guard metric calls.
func New(pkgName string) Service {
	cli, err := statsd.NewBuffered(agentAddr(), bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": agentAddr(), "err": err}).Warn("can't talk to datadog agent, metrics disabled")
		return &impl{pkgName: pkgName}
	}
	return &impl{pkgName: pkgName, cli: cli}
}

var (
	// AgentHost is the datadog agent host, settable from main before New is called
	AgentHost = "127.0.0.1"
	// AgentPort is the datadog agent statsd port
	AgentPort = "8125"
)

func agentAddr() string {
	return fmt.Sprintf("%s:%s", AgentHost, AgentPort)
}

type impl struct {
	pkgName string
	cli     statsCli
}

func (m *impl) key(key string) string {
	return m.pkgName + "." + key
}

func (m *impl) BumpSum(key string, val float64, tags ...string) {
	if m.cli == nil {
		return
	}
	if err := m.cli.Count(m.key(key), int64(val), parseTags(tags), sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpSum failed")
	}
}

func (m *impl) BumpHistogram(key string, val float64, tags ...string) {
	if m.cli == nil {
		return
	}
	if err := m.cli.Histogram(m.key(key), val, parseTags(tags), sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpHistogram failed")
	}
}

func (m *impl) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		cli:   m.cli,
		start: time.Now(),
		key:   m.key(key),
		tags:  parseTags(tags),
	}
}

// parseTags converts alternating key/value strings into datadog "k:v" tags
func parseTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type timeTracker struct {
	cli   statsCli
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	if t.cli == nil {
		return
	}
	dur := float64(time.Since(t.start)) / float64(time.Millisecond)
	if err := t.cli.TimeInMilliseconds(t.key, dur, t.tags, sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key}).Error("BumpTime failed")
	}
}
