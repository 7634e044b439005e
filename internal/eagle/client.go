package eagle

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"github.com/go-resty/resty/v2"
	"math"
	"net"
	"strconv"
	"strings"
	"sync"
)

const postManagerPath = "/cgi-bin/post_manager"

const (
	cmdListDevices         = "list_devices"
	cmdInstantaneousDemand = "get_instantaneous_demand"
	cmdPrice               = "get_price"
)

// Client talks to the Rainforest cloud. It keeps no history of readings.
type Client struct {
	http *resty.Client

	mu    sync.Mutex
	macID string
}

var _ Poller = (*Client)(nil)

func New(cfg Config) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	hc := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout).
		SetHeader("Cloud-ID", cfg.CloudID).
		SetHeader("User", cfg.Username).
		SetHeader("Password", cfg.Password).
		SetHeader("Content-Type", "text/xml")

	return &Client{http: hc, macID: cfg.MacID}
}

type command struct {
	XMLName xml.Name `xml:"Command"`
	Name    string   `xml:"Name"`
	MacID   string   `xml:"MacId,omitempty"`
	Format  string   `xml:"Format"`
}

type demandResponse struct {
	InstantaneousDemand *struct {
		Demand     string `json:"Demand"`
		Multiplier string `json:"Multiplier"`
		Divisor    string `json:"Divisor"`
	} `json:"InstantaneousDemand"`
}

type priceResponse struct {
	PriceCluster *struct {
		Price          string `json:"Price"`
		TrailingDigits string `json:"TrailingDigits"`
	} `json:"PriceCluster"`
}

type device struct {
	DeviceMacID string `json:"DeviceMacId"`
}

type deviceListResponse struct {
	DeviceList *struct {
		// A single device is sent as an object, several as an array.
		Device json.RawMessage `json:"Device"`
	} `json:"DeviceList"`
}

func (c *Client) InstantaneousDemand(ctx context.Context) (Demand, error) {
	mac, err := c.deviceMacID(ctx)
	if err != nil {
		return Demand{}, err
	}

	var out demandResponse
	if err := c.send(ctx, cmdInstantaneousDemand, mac, &out); err != nil {
		return Demand{}, err
	}
	d := out.InstantaneousDemand
	if d == nil {
		return Demand{}, fmt.Errorf("%w: %s: missing InstantaneousDemand", ErrPoller, cmdInstantaneousDemand)
	}

	raw, err := parseSignedHex(d.Demand)
	if err != nil {
		return Demand{}, fmt.Errorf("%w: %s: demand: %v", ErrPoller, cmdInstantaneousDemand, err)
	}
	mult, err := parseHexOr(d.Multiplier, 1)
	if err != nil {
		return Demand{}, fmt.Errorf("%w: %s: multiplier: %v", ErrPoller, cmdInstantaneousDemand, err)
	}
	div, err := parseHexOr(d.Divisor, 1)
	if err != nil {
		return Demand{}, fmt.Errorf("%w: %s: divisor: %v", ErrPoller, cmdInstantaneousDemand, err)
	}

	return Demand{Kilowatts: float64(raw) * float64(mult) / float64(div)}, nil
}

func (c *Client) Price(ctx context.Context) (Price, error) {
	mac, err := c.deviceMacID(ctx)
	if err != nil {
		return Price{}, err
	}

	var out priceResponse
	if err := c.send(ctx, cmdPrice, mac, &out); err != nil {
		return Price{}, err
	}
	p := out.PriceCluster
	if p == nil {
		return Price{}, fmt.Errorf("%w: %s: missing PriceCluster", ErrPoller, cmdPrice)
	}

	raw, err := parseHex(p.Price)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %s: price: %v", ErrPoller, cmdPrice, err)
	}
	trailing, err := parseHexOr(p.TrailingDigits, 0)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %s: trailing digits: %v", ErrPoller, cmdPrice, err)
	}

	return Price{Hundredths: toHundredths(raw, int(trailing))}, nil
}

// toHundredths rescales raw, which carries trailing decimal digits, to two decimals.
func toHundredths(raw uint64, trailing int) float64 {
	if trailing > 2 {
		return float64(raw) / math.Pow10(trailing-2)
	}
	return float64(raw) * math.Pow10(2-trailing)
}

// deviceMacID returns the configured gateway, discovering it on first use.
func (c *Client) deviceMacID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.macID != "" {
		return c.macID, nil
	}

	var out deviceListResponse
	if err := c.send(ctx, cmdListDevices, "", &out); err != nil {
		return "", err
	}
	if out.DeviceList == nil || len(out.DeviceList.Device) == 0 {
		return "", fmt.Errorf("%w: %s: no devices registered", ErrPoller, cmdListDevices)
	}

	var devices []device
	if err := json.Unmarshal(out.DeviceList.Device, &devices); err != nil {
		var single device
		if err := json.Unmarshal(out.DeviceList.Device, &single); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrPoller, cmdListDevices, err)
		}
		devices = []device{single}
	}
	if len(devices) == 0 || devices[0].DeviceMacID == "" {
		return "", fmt.Errorf("%w: %s: no devices registered", ErrPoller, cmdListDevices)
	}

	c.macID = devices[0].DeviceMacID
	return c.macID, nil
}

func (c *Client) send(ctx context.Context, name, macID string, out any) error {
	body, err := xml.Marshal(command{Name: name, MacID: macID, Format: "JSON"})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPoller, name, err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(postManagerPath)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %s: %v", ErrTimeout, name, err)
		}
		return fmt.Errorf("%w: %s: %v", ErrPoller, name, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: %s: unexpected status %d", ErrPoller, name, resp.StatusCode())
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %s: decode response: %v", ErrPoller, name, err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func trimHex(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

func parseHex(s string) (uint64, error) {
	return strconv.ParseUint(trimHex(s), 16, 64)
}

// parseHexOr treats a missing or zero field as def.
func parseHexOr(s string, def uint64) (uint64, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	v, err := parseHex(s)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return def, nil
	}
	return v, nil
}

// demandBits is the width of the signed ZigBee InstantaneousDemand attribute.
const demandBits = 24

// parseSignedHex reads a 24-bit two's complement value, however many digits are sent.
func parseSignedHex(s string) (int64, error) {
	v, err := parseHex(s)
	if err != nil {
		return 0, err
	}
	if v >= 1<<demandBits {
		return 0, fmt.Errorf("value %s exceeds %d bits", s, demandBits)
	}

	if v&(1<<(demandBits-1)) != 0 {
		return int64(v) - 1<<demandBits, nil
	}
	return int64(v), nil
}
