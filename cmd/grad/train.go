package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/grad/engine"
	"github.com/born-ml/grad/nn"
	"github.com/born-ml/grad/optim"
)

// trainConfig holds the options of the train command.
type trainConfig struct {
	DataFile  string
	Samples   int
	Noise     float64
	ValFrac   float64
	Hidden    []int
	Epochs    int
	Optimizer string
	LR        float64
	Momentum  float64
	Alpha     float64
	Seed      int64
	Parallel  bool
}

func parseTrainFlags(args []string, w io.Writer) (trainConfig, error) {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(w)

	cfg := trainConfig{}
	fs.StringVar(&cfg.DataFile, "data", "", "CSV file with x,y,label rows (default: synthetic moons)")
	fs.IntVar(&cfg.Samples, "samples", 100, "Number of synthetic samples")
	fs.Float64Var(&cfg.Noise, "noise", 0.1, "Noise of the synthetic moons")
	fs.Float64Var(&cfg.ValFrac, "val", 0.2, "Fraction of samples held out for validation")
	hidden := fs.String("hidden", "16,16", "Comma-separated hidden layer sizes")
	fs.IntVar(&cfg.Epochs, "epochs", 100, "Number of full-batch training steps")
	fs.Float64Var(&cfg.LR, "lr", 1.0, "Initial learning rate (decays linearly to 10%)")
	fs.StringVar(&cfg.Optimizer, "optimizer", "sgd", "Optimizer: sgd or adam")
	fs.Float64Var(&cfg.Momentum, "momentum", 0, "SGD momentum")
	fs.Float64Var(&cfg.Alpha, "alpha", 1e-4, "L2 regularization strength")
	fs.Int64Var(&cfg.Seed, "seed", 1337, "Random seed for data and weights")
	fs.BoolVar(&cfg.Parallel, "parallel", true, "Build per-sample graphs on multiple goroutines")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	sizes, err := parseSizes(*hidden)
	if err != nil {
		return cfg, err
	}
	cfg.Hidden = sizes

	if cfg.Epochs <= 0 {
		return cfg, fmt.Errorf("epochs must be positive, got %d", cfg.Epochs)
	}
	if cfg.Optimizer != "sgd" && cfg.Optimizer != "adam" {
		return cfg, fmt.Errorf("unknown optimizer %q (want sgd or adam)", cfg.Optimizer)
	}
	if cfg.ValFrac < 0 || cfg.ValFrac >= 1 {
		return cfg, fmt.Errorf("val must be in [0, 1), got %v", cfg.ValFrac)
	}
	return cfg, nil
}

// parseSizes parses "16,16" into []int{16, 16}. An empty string means no
// hidden layers.
func parseSizes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid layer size %q: %w", p, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("layer size must be positive, got %d", n)
		}
		sizes[i] = n
	}
	return sizes, nil
}

func runTrain(args []string, w io.Writer) error {
	cfg, err := parseTrainFlags(args, w)
	if err != nil {
		return err
	}

	var data *Dataset
	if cfg.DataFile != "" {
		data, err = LoadCSV(cfg.DataFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Loaded %d samples from %s\n", data.NumSamples(), cfg.DataFile)
	} else {
		data = MakeMoons(cfg.Samples, cfg.Noise, cfg.Seed)
		fmt.Fprintf(w, "Generated %d moons samples (noise=%.2f)\n", data.NumSamples(), cfg.Noise)
	}

	trainData, valData := data.Split(cfg.ValFrac)
	if trainData.NumSamples() == 0 {
		return fmt.Errorf("no training samples")
	}
	fmt.Fprintf(w, "Train: %d samples, Val: %d samples\n", trainData.NumSamples(), valData.NumSamples())

	model := nn.NewMLP(2, append(cfg.Hidden, 1), nn.Init{Seed: cfg.Seed})
	fmt.Fprintf(w, "Model: %s\n", model)
	fmt.Fprintf(w, "Parameters: %d\n", len(model.Parameters()))
	fmt.Fprintf(w, "Optimizer: %s (lr=%.4f)\n", cfg.Optimizer, cfg.LR)

	pcfg := nn.ParallelConfig{}
	if cfg.Parallel {
		pcfg = nn.DefaultParallelConfig()
	}

	result := train(model, trainData, valData, cfg, pcfg, func(r epochResult) {
		fmt.Fprintf(w, "Epoch %3d/%d: Loss=%.4f, Train Acc=%.2f%%, Val Acc=%.2f%%, LR=%.4f\n",
			r.Epoch+1, cfg.Epochs, r.Loss, r.TrainAcc*100, r.ValAcc*100, r.LR)
	})

	fmt.Fprintf(w, "Final: Loss=%.4f, Train Acc=%.2f%%, Val Acc=%.2f%%\n",
		result.Loss, result.TrainAcc*100, result.ValAcc*100)
	return nil
}

// epochResult reports the metrics of one training step.
type epochResult struct {
	Epoch    int
	Loss     float64
	TrainAcc float64
	ValAcc   float64
	LR       float64
}

// train runs full-batch SGD with hinge loss and L2 regularization and
// returns the metrics of the last epoch.
func train(model *nn.MLP, trainData, valData *Dataset, cfg trainConfig, pcfg nn.ParallelConfig, report func(epochResult)) epochResult {
	optimizer := newOptimizer(model, cfg)

	var last epochResult
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		scores := forwardScores(model, trainData, pcfg)
		dataLoss := nn.HingeLoss(scores, trainData.Labels)
		loss := dataLoss.Add(nn.L2(model.Parameters(), cfg.Alpha))
		trainAcc := nn.Accuracy(scores, trainData.Labels)

		optimizer.SetLR(optim.LinearDecay(cfg.LR, epoch, cfg.Epochs))
		optimizer.ZeroGrad()
		loss.Backward()
		optimizer.Step()

		last = epochResult{
			Epoch:    epoch,
			Loss:     loss.Data(),
			TrainAcc: trainAcc,
			ValAcc:   evaluate(model, valData, pcfg),
			LR:       optimizer.LR(),
		}
		if report != nil {
			report(last)
		}
	}
	return last
}

// newOptimizer builds the optimizer selected by cfg.Optimizer.
func newOptimizer(model *nn.MLP, cfg trainConfig) optim.Optimizer {
	if cfg.Optimizer == "adam" {
		return optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: cfg.LR})
	}
	return optim.NewSGD(model.Parameters(), optim.SGDConfig{
		LR:       cfg.LR,
		Momentum: cfg.Momentum,
	})
}

// forwardScores returns the model score for every sample of d.
func forwardScores(model *nn.MLP, d *Dataset, pcfg nn.ParallelConfig) []*engine.Value {
	outs := model.ForwardBatch(d.Points, pcfg)
	scores := make([]*engine.Value, len(outs))
	for i, o := range outs {
		scores[i] = o[0]
	}
	return scores
}

// evaluate returns the accuracy of model on d without touching gradients.
func evaluate(model *nn.MLP, d *Dataset, pcfg nn.ParallelConfig) float64 {
	if d.NumSamples() == 0 {
		return 0
	}
	return nn.Accuracy(forwardScores(model, d, pcfg), d.Labels)
}
