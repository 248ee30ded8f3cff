package agent

import (
	"context"
	"fmt"

	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/docs"
	"github.com/etnz/montecarlo/renderer"
	"github.com/etnz/montecarlo/yahoo"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to explore how his portfolio could grow: run simulations,
			read the resulting statistics, and ask what-if probability questions.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.

			The user will assume that you know about his portfolio holdings, run a simulation first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert grounded in Google Search for market context.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		very well aware of financial products, companies and indices,
		and of the latest news about them.
		Ask the Analyst whenever you need recent or grounding information about a ticker.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market analyst. You can search and find about anything related to
			companies, markets, funds and indices. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's portfolio.
				`}}},
		},
	}
}

// NewQuant creates the expert in charge of running simulations on the user's
// portfolio file.
func NewQuant(portfolioFile string) *Expert {
	q := &quant{portfolioFile: portfolioFile}
	lib := []Function{q.simulateFunc(), q.probabilityFunc()}

	return &Expert{
		Name: "Quant",
		Description: `This is the Quant. He is in charge of the user's portfolio file and of the
		Monte Carlo simulation engine. He can run simulations, report growth statistics,
		and estimate the probability of any growth outcome.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a quantitative analyst in charge of the user's portfolio simulations.
				You know how to use the Tools to run Monte Carlo simulations and to answer
				probability questions about the final growth of the portfolio.
				You are part of a team of experts, yours is everything computed from the
				user's portfolio file. Pardon their approximative language and figure out what they meant.

				` + must(docs.GetTopic("model"))}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// quant holds what the Quant's functions need to run a simulation.
type quant struct {
	portfolioFile string
}

// buildMarket loads the portfolio file and fetches one return pool per holding.
func (q *quant) buildMarket() (*montecarlo.Market, *montecarlo.Portfolio, error) {
	p, err := montecarlo.LoadPortfolio(q.portfolioFile)
	if err != nil {
		return nil, nil, err
	}

	client := yahoo.NewClient()
	market := montecarlo.NewMarket()
	for _, ticker := range p.Tickers() {
		closes, err := client.DailyCloses(ticker)
		if err != nil {
			return nil, nil, fmt.Errorf("could not fetch %q: %w", ticker, err)
		}
		_, yearly := yahoo.YearEndCloses(closes)
		pool, err := montecarlo.AnnualReturns(ticker, yearly)
		if err != nil {
			return nil, nil, err
		}
		market.Add(montecarlo.NewAsset(ticker, pool))
	}
	return market, p, nil
}

func (q *quant) run(ctx context.Context, cfg montecarlo.Config) (montecarlo.TrialMatrix, *montecarlo.Market, *montecarlo.Portfolio, error) {
	market, p, err := q.buildMarket()
	if err != nil {
		return nil, nil, nil, err
	}
	matrix, err := montecarlo.Run(ctx, market, p, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return matrix, market, p, nil
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func (q *quant) simulateFunc() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Simulate",
			Description: `Simulate runs a Monte Carlo simulation of the user's portfolio and
			returns a markdown report of the final growth distribution: mean, median,
			extremes, standard deviation and the 10th to 90th percentile band.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"trials": {
						Type:        genai.TypeNumber,
						Description: "Number of simulated trials. Default is 1000.",
					},
					"years": {
						Type:        genai.TypeNumber,
						Description: "Investment horizon in years. Default is 10.",
					},
					"initial": {
						Type:        genai.TypeNumber,
						Description: "Initial investment amount. Default is 10000.",
					},
					"benchmark": {
						Type:        genai.TypeNumber,
						Description: "Optional fixed annual return to compare against, as a fraction (0.07 means 7% per year).",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted simulation report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			cfg := montecarlo.Config{
				Trials:            argInt(args, "trials", 1000),
				Years:             argInt(args, "years", 10),
				InitialInvestment: argFloat(args, "initial", 10000),
			}
			if b, ok := args["benchmark"].(float64); ok {
				cfg.BenchmarkReturn = &b
			}

			matrix, market, p, err := q.run(ctx, cfg)
			if err != nil {
				return errResponse(id, "Simulate", err)
			}
			report, err := renderer.NewReport(market, p, cfg, matrix, "USD")
			if err != nil {
				return errResponse(id, "Simulate", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Simulate",
				Response: map[string]any{
					"output": renderer.SimulationMarkdown(report),
				},
			}
		},
	}
}

func (q *quant) probabilityFunc() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Probability",
			Description: `Probability estimates the chance that the final portfolio growth falls
			strictly above a minimum, strictly below a maximum, or strictly between both.
			Growth bounds are percentages of the initial investment (25 means +25%).`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"min": {
						Type:        genai.TypeNumber,
						Description: "Exclusive lower bound on final growth, in percent.",
					},
					"max": {
						Type:        genai.TypeNumber,
						Description: "Exclusive upper bound on final growth, in percent.",
					},
					"trials": {
						Type:        genai.TypeNumber,
						Description: "Number of simulated trials. Default is 1000.",
					},
					"years": {
						Type:        genai.TypeNumber,
						Description: "Investment horizon in years. Default is 10.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The estimated probability, as a percentage.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			minv, hasMin := args["min"].(float64)
			maxv, hasMax := args["max"].(float64)

			var query montecarlo.Query
			switch {
			case hasMin && hasMax:
				query = montecarlo.BetweenQuery(minv, maxv)
			case hasMin:
				query = montecarlo.AtLeastQuery(minv)
			case hasMax:
				query = montecarlo.AtMostQuery(maxv)
			default:
				return errResponse(id, "Probability", fmt.Errorf("at least one of 'min' and 'max' is required"))
			}

			cfg := montecarlo.Config{
				Trials:            argInt(args, "trials", 1000),
				Years:             argInt(args, "years", 10),
				InitialInvestment: argFloat(args, "initial", 10000),
			}
			matrix, _, _, err := q.run(ctx, cfg)
			if err != nil {
				return errResponse(id, "Probability", err)
			}
			dist := montecarlo.FinalGrowths(matrix, cfg.InitialInvestment)
			prob, err := montecarlo.Probability(dist, query)
			if err != nil {
				return errResponse(id, "Probability", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Probability",
				Response: map[string]any{
					"output": prob.String(),
				},
			}
		},
	}
}

// argFloat reads a numeric argument, falling back to def when absent.
func argFloat(args map[string]any, name string, def float64) float64 {
	if v, ok := args[name].(float64); ok {
		return v
	}
	return def
}

func argInt(args map[string]any, name string, def int) int {
	return int(argFloat(args, name, float64(def)))
}
