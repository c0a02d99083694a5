// Command bestpair queries the device service for a device's calibration and
// prints the best calibrated qubit pair for a native two-qubit gate.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"

	braket "github.com/alessum/amazon-braket-examples"
)

type cli struct {
	Url     string        `help:"Device service endpoint." default:"${default_url}"`
	Token   string        `help:"API token." env:"BRAKET_API_TOKEN" required:""`
	Timeout time.Duration `help:"Per-request timeout." default:"30s"`
	Quiet   bool          `help:"Only print the selected pair." short:"q"`

	Device string `arg:"" help:"Device ARN."`
	Gate   string `arg:"" help:"Native two-qubit gate name, e.g. ISWAP."`
}

func main() {
	var args cli
	kctx := kong.Parse(&args,
		kong.Name("bestpair"),
		kong.Description("Select the best calibrated qubit pair for a two-qubit gate."),
		kong.Vars{"default_url": braket.DefaultUrl},
		kong.UsageOnError(),
	)

	if args.Quiet {
		log.SetLevel(log.WarnLevel)
	}

	conn, err := braket.Dial(
		braket.WithApiToken(args.Token),
		braket.WithApiUrl(args.Url),
		braket.WithTimeout(args.Timeout),
	)
	kctx.FatalIfErrorf(err)

	client := braket.NewClient(conn, braket.WithClientApplication("bestpair"))

	best, err := client.BestPair(context.Background(), args.Device, args.Gate)
	kctx.FatalIfErrorf(err)

	fmt.Printf("%s %.4f\n", best.Pair, best.Fidelity)
}
