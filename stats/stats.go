// Package stats submits event and command counts, plus process and system
// statistics, to InfluxDB once a minute. All methods are safe to call on a
// nil *Client, so the rest of the bot doesn't need to care whether metrics
// are configured.
package stats

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"runtime"
	"sync"
	"syscall"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/starshine-sys/vigil/common"
)

// Client is an InfluxDB client.
type Client struct {
	Client api.WriteAPI

	cmdsMu sync.Mutex
	cmds   uint32

	m  map[string]uint32
	mu sync.Mutex
}

// New creates a new client and starts its submit loop.
func New(url, token, organization, database string) *Client {
	c := &Client{
		m: make(map[string]uint32),
	}

	c.Client = influxdb2.NewClientWithOptions(url, token,
		influxdb2.DefaultOptions().SetBatchSize(20)).WriteAPI(organization, database)

	go c.submit()

	return c
}

// EventHandler counts arikawa gateway events by type name. Register it as a
// catch-all handler.
func (c *Client) EventHandler(ev interface{}) {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.m[reflect.ValueOf(ev).Elem().Type().Name()]++
	c.mu.Unlock()
}

// IncCommand increments the command count by one.
func (c *Client) IncCommand() {
	if c == nil {
		return
	}

	c.cmdsMu.Lock()
	c.cmds++
	c.cmdsMu.Unlock()
}

func (c *Client) submit() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt, os.Kill)
	defer stop()

	ticker := time.NewTicker(time.Minute)

	for {
		select {
		case <-ticker.C:
			go c.submitInner()
		case <-ctx.Done():
			ticker.Stop()
			c.Client.Flush()
			return
		}
	}
}

func (c *Client) submitInner() {
	common.Log.Debug("Submitting metrics to InfluxDB")

	var cmds, totalEvents uint32

	c.cmdsMu.Lock()
	cmds = c.cmds
	c.cmds = 0
	c.cmdsMu.Unlock()

	c.mu.Lock()
	im := make(map[string]interface{}, len(c.m))
	for k, v := range c.m {
		totalEvents += v
		im[k] = v
		c.m[k] = 0
	}
	c.mu.Unlock()

	p := influxdb2.NewPoint("events", nil, im, time.Now())
	c.Client.WritePoint(p)

	stats := runtime.MemStats{}
	runtime.ReadMemStats(&stats)

	data := map[string]interface{}{
		"events":      totalEvents,
		"commands":    cmds,
		"alloc":       stats.Alloc,
		"sys":         stats.Sys,
		"total_alloc": stats.TotalAlloc,
		"goroutines":  runtime.NumGoroutine(),
	}

	sysMem, err := mem.VirtualMemory()
	if err != nil {
		common.Log.Errorf("Error getting system memory: %v", err)
	} else {
		data["total_sys"] = sysMem.Used
		data["total_sys_percent"] = sysMem.UsedPercent
	}

	cpuData, err := cpu.Percent(time.Minute, true)
	if err != nil {
		common.Log.Errorf("Error getting cpu info: %v", err)
	} else {
		for i, d := range cpuData {
			data[fmt.Sprintf("cpu_%d", i)] = d
		}
	}

	p = influxdb2.NewPoint("statistics", nil, data, time.Now())
	c.Client.WritePoint(p)
}
