// Command pricer runs an end-to-end local-vol Monte Carlo pricing
// scenario: it builds a Bates model, generates a local-vol surface from
// it, prices one of the three supported products with the AAD Monte
// Carlo driver, and reports the price alongside the Greeks recovered
// from the tape. The plain (non-AAD) driver is not run.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ucthesis/tapedmc/ad"
	"github.com/ucthesis/tapedmc/mc"
	"github.com/ucthesis/tapedmc/pricing"
	"github.com/ucthesis/tapedmc/rng"
	"github.com/ucthesis/tapedmc/volsurface"
)

var log = logrus.WithField("component", "pricer")

type scenarioFlags struct {
	spot, strike, rate, div, maturity float64
	v0, vT, kappa, sigma, rho         float64
	intensity, jumpMean, jumpStd      float64
	paths                             int
	upper, lower, anchor, coupon      float64
	freq                              float64
}

func newScenarioFlags(cmd *cobra.Command) *scenarioFlags {
	f := &scenarioFlags{}
	cmd.Flags().Float64Var(&f.spot, "spot", 100, "spot level")
	cmd.Flags().Float64Var(&f.strike, "strike", 100, "strike")
	cmd.Flags().Float64Var(&f.rate, "rate", 0.0, "risk-free rate")
	cmd.Flags().Float64Var(&f.div, "div", 0.0, "dividend yield")
	cmd.Flags().Float64Var(&f.maturity, "maturity", 1.0, "maturity in years")
	cmd.Flags().Float64Var(&f.v0, "v0", 0.04, "Bates/Heston initial variance")
	cmd.Flags().Float64Var(&f.vT, "vT", 0.05, "Bates/Heston long-run variance")
	cmd.Flags().Float64Var(&f.kappa, "kappa", 1.0, "mean-reversion speed")
	cmd.Flags().Float64Var(&f.sigma, "sigma", 0.2, "vol of vol")
	cmd.Flags().Float64Var(&f.rho, "rho", -0.7, "spot/vol correlation")
	cmd.Flags().Float64Var(&f.intensity, "intensity", 1.0, "jump intensity")
	cmd.Flags().Float64Var(&f.jumpMean, "jump-mean", 0.05, "mean log jump size")
	cmd.Flags().Float64Var(&f.jumpStd, "jump-std", 0.05, "stdev of log jump size")
	cmd.Flags().IntVar(&f.paths, "paths", 50000, "Monte Carlo path count")
	cmd.Flags().Float64Var(&f.upper, "upper", 120, "barrier / auto-call upper trigger")
	cmd.Flags().Float64Var(&f.lower, "lower", 50, "auto-call capital-protection lower trigger")
	cmd.Flags().Float64Var(&f.anchor, "anchor", 100, "auto-call capital-protection anchor")
	cmd.Flags().Float64Var(&f.coupon, "coupon", 10, "auto-call coupon")
	cmd.Flags().Float64Var(&f.freq, "freq", 0.25, "barrier observation frequency in years")
	return f
}

func (f *scenarioFlags) model() pricing.Model {
	return &pricing.Bates{
		S: f.spot, Rate: f.rate, Div: f.div,
		V0: f.v0, VT: f.vT, Kappa: f.kappa, Sigma: f.sigma, Rho: f.rho,
		Intensity: f.intensity, JumpMean: f.jumpMean, JumpStd: f.jumpStd,
	}
}

func surfaceGrids(f *scenarioFlags) []float64 {
	const n = 21
	spots := make([]float64, n)
	lo, hi := f.spot*0.5, f.spot*1.5
	for i := range spots {
		spots[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return spots
}

func buildSurface(f *scenarioFlags, timeline []float64) (*volsurface.Surface, error) {
	return volsurface.Generate(f.model(), surfaceGrids(f), timeline, f.rate, f.div)
}

func runEuropean(f *scenarioFlags) error {
	p := mc.European{Strike: f.strike, Maturity: f.maturity}
	surface, err := buildSurface(f, p.Timeline())
	if err != nil {
		return err
	}

	ad.Clear()
	taped := volsurface.Convert(surface)
	spot := ad.NewLeaf(f.spot)
	rate := ad.NewLeaf(f.rate)
	div := ad.NewLeaf(f.div)
	strike := ad.NewLeaf(f.strike)

	price := mc.EuropeanCallPriceAAD(p, spot, rate, div, strike, taped, f.paths, rng.NewMrg32k())

	fmt.Printf("price: %.6f\n", price)
	fmt.Printf("delta     (dPrice/dSpot):   %.6f\n", spot.Adjoint())
	fmt.Printf("rho       (dPrice/dRate):   %.6f\n", rate.Adjoint())
	fmt.Printf("dualDelta (dPrice/dStrike): %.6f\n", strike.Adjoint())
	return nil
}

func runBarrier(f *scenarioFlags) error {
	p := mc.UpAndOutCall{Strike: f.strike, Upper: f.upper, Maturity: f.maturity, Freq: f.freq}
	surface, err := buildSurface(f, p.Timeline())
	if err != nil {
		return err
	}

	ad.Clear()
	taped := volsurface.Convert(surface)
	spot := ad.NewLeaf(f.spot)
	rate := ad.NewLeaf(f.rate)
	div := ad.NewLeaf(f.div)
	strike := ad.NewLeaf(f.strike)

	price := mc.UpAndOutCallPriceAAD(p, spot, rate, div, strike, taped, f.paths, rng.NewMrg32k())

	fmt.Printf("price: %.6f\n", price)
	fmt.Printf("delta     (dPrice/dSpot):   %.6f\n", spot.Adjoint())
	fmt.Printf("dualDelta (dPrice/dStrike): %.6f\n", strike.Adjoint())
	return nil
}

func runAutoCallable(f *scenarioFlags) error {
	p := mc.AutoCallable{
		Coupon: f.coupon, Upper: f.upper, Lower: f.lower, Anchor: f.anchor,
		Observations: []float64{f.maturity / 3, 2 * f.maturity / 3, f.maturity},
	}
	surface, err := buildSurface(f, p.Timeline())
	if err != nil {
		return err
	}

	ad.Clear()
	taped := volsurface.Convert(surface)
	spot := ad.NewLeaf(f.spot)
	rate := ad.NewLeaf(f.rate)
	div := ad.NewLeaf(f.div)

	price := mc.AutoCallablePriceAAD(p, spot, rate, div, taped, f.paths, rng.NewMrg32k())

	fmt.Printf("price: %.6f\n", price)
	fmt.Printf("delta (dPrice/dSpot): %.6f\n", spot.Adjoint())
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pricer",
		Short: "local-vol Monte Carlo pricer with reverse-mode AAD Greeks",
	}

	priceCmd := &cobra.Command{Use: "price", Short: "price a product"}

	callCmd := &cobra.Command{Use: "call", Short: "price a European call"}
	callFlags := newScenarioFlags(callCmd)
	callCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runEuropean(callFlags)
	}

	barrierCmd := &cobra.Command{Use: "barrier", Short: "price an up-and-out barrier call"}
	barrierFlags := newScenarioFlags(barrierCmd)
	barrierCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runBarrier(barrierFlags)
	}

	autoCmd := &cobra.Command{Use: "autocallable", Short: "price an auto-callable note"}
	autoFlags := newScenarioFlags(autoCmd)
	autoCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runAutoCallable(autoFlags)
	}

	priceCmd.AddCommand(callCmd, barrierCmd, autoCmd)
	root.AddCommand(priceCmd)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("pricing run failed")
		os.Exit(1)
	}
}
