// Solve a zero-sum matrix game and print the row player's equilibrium strategy.
package main

import (
	"bytes"
	"flag"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	jsoniter "github.com/json-iterator/go"
	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"

	"github.com/timpalpant/nashsolver/internal/config"
	"github.com/timpalpant/nashsolver/matrixgame"
	"github.com/timpalpant/nashsolver/npyio"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	input := flag.String("input", "-", "JSON file with the payoff matrix (.gz for gzipped, - for stdin)")
	configFile := flag.String("config", "", "INI file with solver settings")
	output := flag.String("output", "", "Save strategies to this .npy (row only) or .npz (row and column) file")
	sample := flag.Bool("sample", false, "Sample an action from the row strategy")
	seed := flag.Int64("seed", 123, "Random seed")
	flag.Parse()

	rand.Seed(*seed)

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			glog.Fatal(err)
		}
	}

	payoffs, err := loadPayoffs(*input)
	if err != nil {
		glog.Fatal(err)
	}

	if err := matrixgame.Validate(payoffs); err != nil {
		glog.Fatal(err)
	}

	result := matrixgame.FictitiousPlay(payoffs, cfg.Params())
	glog.Infof("Finished after %d iterations (converged: %v)", result.Iterations, result.Converged)
	glog.Infof("Row strategy: %v", result.RowStrategy)
	glog.Infof("Column strategy: %v", result.ColStrategy)
	glog.Infof("Game value: %v", matrixgame.ExpectedPayoff(payoffs, result.RowStrategy, result.ColStrategy))
	glog.Infof("Exploitability: %v", matrixgame.Exploitability(payoffs, result.RowStrategy, result.ColStrategy))

	if *sample && len(result.RowStrategy) > 0 {
		action := matrixgame.SampleAction(result.RowStrategy, rand.Float64())
		glog.Infof("Sampled row action %d", action)
	}

	if *output != "" {
		glog.Infof("Saving strategies to: %v", *output)
		if err := saveStrategies(result, *output); err != nil {
			glog.Fatal(err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(result.RowStrategy); err != nil {
		glog.Fatal(err)
	}
}

func loadPayoffs(filename string) ([][]float64, error) {
	var r io.Reader = os.Stdin
	if filename != "-" && filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f

		if strings.HasSuffix(filename, ".gz") {
			gzr, err := gzip.NewReader(f)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to open %v", filename)
			}
			defer gzr.Close()
			r = gzr
		}
	}

	var payoffs [][]float64
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payoffs); err != nil {
		return nil, errors.Wrap(err, "failed to decode payoff matrix")
	}

	return payoffs, nil
}

func saveStrategies(result matrixgame.Result, output string) error {
	switch filepath.Ext(output) {
	case ".npy":
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		if err := npyio.Write(f, result.RowStrategy); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".npz":
		var row, col bytes.Buffer
		if err := npyio.Write(&row, result.RowStrategy); err != nil {
			return err
		}
		if err := npyio.Write(&col, result.ColStrategy); err != nil {
			return err
		}
		return npyio.MakeNPZ(map[string]io.Reader{
			"row.npy": &row,
			"col.npy": &col,
		}, output)
	default:
		return errors.Errorf("unsupported output format: %v", output)
	}
}
