package braket

import (
	"context"
	"net/url"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
)

func init() {
	// Set up logger
	log.SetOutput(os.Stdout)
}

type clientOptions struct {
	// API User specific data
	clientAppl string

	// Device listing filters
	provider string
}

// DefaultClientAppl is the default client application name reported to the device service
const DefaultClientAppl = "braket-devices-go"

// ClientOption configures how the client is set up
type ClientOption func(*clientOptions)

// WithClientApplication specifies which application is using the device service
func WithClientApplication(appl string) ClientOption {
	return func(options *clientOptions) {
		options.clientAppl = DefaultClientAppl + ":" + appl
	}
}

// WithProvider restricts device listings to a single hardware provider
func WithProvider(name string) ClientOption {
	return func(options *clientOptions) {
		options.provider = name
	}
}

// Client represents a concurrent-safe device service client
type Client struct {
	mu sync.Mutex

	opts    clientOptions
	conn    *Conn
	devices Devices
}

// NewClient returns a device service client
func NewClient(conn *Conn, options ...ClientOption) *Client {
	var opts clientOptions
	for _, option := range options {
		option(&opts)
	}

	// Set defaults
	if opts.clientAppl == "" {
		opts.clientAppl = DefaultClientAppl
	}

	return &Client{
		opts:    opts,
		conn:    conn,
		devices: make(Devices),
	}
}

// AvailableDevices returns all the online devices offered by the service.
// Devices that are retired or under maintenance are filtered out.
func (c *Client) AvailableDevices(ctx context.Context, options ...ClientOption) (Devices, error) {
	for _, option := range options {
		option(&c.opts)
	}

	params := "?client=" + url.QueryEscape(c.opts.clientAppl)
	if c.opts.provider != "" {
		params += "&provider=" + url.QueryEscape(c.opts.provider)
	}

	resp, err := c.conn.get(ctx, "devices", params)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer resp.Body.Close()

	var ds []*DeviceProperties
	if err := c.conn.decode(resp.Body, &ds); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range ds {
		if d.Status == DeviceStatusOnline {
			c.devices[d.Arn] = d
		}
	}

	return c.devices, nil
}

// GetDevice retrieves the properties of a device by its ARN. Properties seen
// before are served from the client's cache; use RefreshDevice to force a
// fetch after a recalibration.
func (c *Client) GetDevice(ctx context.Context, arn string) (*DeviceProperties, error) {
	c.mu.Lock()
	d, ok := c.devices[arn]
	c.mu.Unlock()
	if ok {
		return d, nil
	}

	return c.RefreshDevice(ctx, arn)
}

// RefreshDevice fetches the properties of a device from the service and
// replaces any cached copy.
func (c *Client) RefreshDevice(ctx context.Context, arn string) (*DeviceProperties, error) {
	resp, err := c.conn.get(ctx, "devices/"+url.PathEscape(arn), "")
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer resp.Body.Close()

	var d DeviceProperties
	if err := c.conn.decode(resp.Body, &d); err != nil {
		return nil, err
	}
	if d.Arn == "" {
		d.Arn = arn
	}

	c.mu.Lock()
	c.devices[d.Arn] = &d
	c.mu.Unlock()

	return &d, nil
}

// BestPair fetches the device properties and returns the best calibrated
// qubit pair for the given native two-qubit gate, along with the fidelity the
// provider reported for it.
func (c *Client) BestPair(ctx context.Context, arn, gate string) (BestPair, error) {
	d, err := c.GetDevice(ctx, arn)
	if err != nil {
		return BestPair{}, err
	}

	best, err := d.BestPair(gate)
	if err != nil {
		return BestPair{}, err
	}

	log.WithFields(log.Fields{
		"device":   arn,
		"gate":     gate,
		"pair":     best.Pair.String(),
		"fidelity": best.Fidelity,
	}).Info("selected best calibrated pair")

	return best, nil
}
