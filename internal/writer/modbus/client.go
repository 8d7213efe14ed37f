// internal/writer/modbus/client.go
package modbus

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// maxWriteQty is the FC16 limit of registers per request.
const maxWriteQty = 123

// areaHolding is the only writable register memory.
const areaHolding byte = 3

// Config describes one Modbus TCP register memory.
type Config struct {
	Endpoint string
	Timeout  time.Duration

	// Read the block back after writing and compare.
	Verify bool
}

// EndpointClient owns one TCP connection, dialled on first use.
// Requests are serialized: the unit id lives on the shared handler.
type EndpointClient struct {
	mu        sync.Mutex
	cfg       Config
	handler   *modbus.TCPClientHandler
	client    modbus.Client
	connected bool
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	if cfg.Timeout > 0 {
		h.Timeout = cfg.Timeout
	}

	return &EndpointClient{
		cfg:     cfg,
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

func (c *EndpointClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	c.connected = false
	return c.handler.Close()
}

// WriteRegisters implements writer.endpointClient using FC16.
// Blocks longer than one request are split at maxWriteQty.
func (c *EndpointClient) WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error {
	if area != areaHolding {
		return fmt.Errorf("writer modbus: area %d is not writable", area)
	}
	if len(regs) == 0 {
		return nil
	}
	if int(addr)+len(regs) > 0x10000 {
		return fmt.Errorf("writer modbus: block %d+%d exceeds address space", addr, len(regs))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		if err := c.handler.Connect(); err != nil {
			return fmt.Errorf("writer modbus: connect %s: %w", c.cfg.Endpoint, err)
		}
		c.connected = true
	}
	c.handler.SlaveId = unitID

	for _, ch := range chunks(addr, regs, maxWriteQty) {
		payload := encodeRegisters(ch.regs)

		if _, err := c.client.WriteMultipleRegisters(ch.addr, uint16(len(ch.regs)), payload); err != nil {
			return fmt.Errorf("writer modbus: write %d@%d: %w", len(ch.regs), ch.addr, err)
		}

		if !c.cfg.Verify {
			continue
		}
		got, err := c.client.ReadHoldingRegisters(ch.addr, uint16(len(ch.regs)))
		if err != nil {
			return fmt.Errorf("writer modbus: verify read %d@%d: %w", len(ch.regs), ch.addr, err)
		}
		if !bytes.Equal(got, payload) {
			return fmt.Errorf("writer modbus: verify mismatch at %d", ch.addr)
		}
	}
	return nil
}

type chunk struct {
	addr uint16
	regs []uint16
}

func chunks(addr uint16, regs []uint16, size int) []chunk {
	var out []chunk
	for start := 0; start < len(regs); start += size {
		end := start + size
		if end > len(regs) {
			end = len(regs)
		}
		out = append(out, chunk{addr: addr + uint16(start), regs: regs[start:end]})
	}
	return out
}

// encodeRegisters lays registers out big-endian, as on the wire.
func encodeRegisters(regs []uint16) []byte {
	out := make([]byte, 0, 2*len(regs))
	for _, r := range regs {
		out = binary.BigEndian.AppendUint16(out, r)
	}
	return out
}
