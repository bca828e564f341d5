package dataset

import (
	"math/rand/v2"

	"github.com/iwvelando/automobile-sales/pkg/constants"
	"github.com/iwvelando/automobile-sales/pkg/datetime"
	"github.com/iwvelando/automobile-sales/pkg/mathutil"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generation parameters.
const (
	baseSalesMean  = 1000.0
	baseSalesSigma = 200.0
	minSales       = 100

	recessionSalesFactor = 0.6
	salesSeasonality     = 0.3
	weightSeasonality    = 0.2

	gdpMean            = 25000.0
	gdpSigma           = 3000.0
	recessionGDPFactor = 0.9

	unemploymentRecessionMean = 8.5
	unemploymentNormalMean    = 5.5
	unemploymentSigma         = 1.0
	unemploymentMin           = 3.0
	unemploymentMax           = 15.0

	confidenceRecessionMean = 45.0
	confidenceNormalMean    = 70.0
	confidenceSigma         = 10.0
	confidenceMin           = 20.0
	confidenceMax           = 100.0

	priceVariationSigma = 0.15

	adSpendMean            = 800000.0
	adSpendSigma           = 150000.0
	recessionAdSpendFactor = 0.7
	minAdSpend             = 100000.0

	competitionMean  = 5.0
	competitionSigma = 1.5
	competitionMin   = 1.0
	competitionMax   = 10.0
)

// pcgStream is the fixed second word of the PCG state; only the seed varies.
const pcgStream = 0x9e3779b97f4a7c15

// Generate builds the full table for 1980-01 through 2013-12. The result is a
// pure function of seed.
func Generate(logger *zap.Logger, seed uint64) *Table {
	if logger == nil {
		logger = zap.NewNop()
	}

	src := rand.NewPCG(seed, pcgStream)
	normal := func(mu, sigma float64) float64 {
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: src}.Rand()
	}

	types := VehicleTypes()
	months := datetime.MonthEnds(constants.StartYear, constants.EndYear)
	records := make([]SalesRecord, 0, len(months)*len(types))

	for _, date := range months {
		recession := IsRecession(date)
		month := int(date.Month())

		for _, vehicleType := range types {
			// Draw order is fixed: changing it changes every value for a seed.
			sales := normal(baseSalesMean, baseSalesSigma)
			if recession {
				sales *= recessionSalesFactor
			}
			sales *= mathutil.SeasonalFactor(month, salesSeasonality)
			sales *= vehicleType.Popularity()

			gdp := normal(gdpMean, gdpSigma)
			if recession {
				gdp *= recessionGDPFactor
			}

			unemployment := normal(pick(recession, unemploymentRecessionMean, unemploymentNormalMean), unemploymentSigma)
			confidence := normal(pick(recession, confidenceRecessionMean, confidenceNormalMean), confidenceSigma)
			price := vehicleType.BasePrice() * normal(1, priceVariationSigma)

			adSpend := normal(adSpendMean, adSpendSigma)
			if recession {
				adSpend *= recessionAdSpendFactor
			}

			competition := normal(competitionMean, competitionSigma)

			records = append(records, SalesRecord{
				Date:                   date,
				Recession:              recession,
				VehicleType:            vehicleType,
				AutomobileSales:        max(minSales, int(sales)),
				GDP:                    gdp,
				UnemploymentRate:       mathutil.Clamp(unemployment, unemploymentMin, unemploymentMax),
				ConsumerConfidence:     mathutil.Clamp(confidence, confidenceMin, confidenceMax),
				SeasonalityWeight:      mathutil.SeasonalFactor(month, weightSeasonality),
				Price:                  price,
				AdvertisingExpenditure: mathutil.Floor(adSpend, minAdSpend),
				Competition:            mathutil.Clamp(competition, competitionMin, competitionMax),
				Month:                  month,
				Year:                   date.Year(),
			})
		}
	}

	logger.Debug("dataset generated",
		zap.String("op", "dataset.Generate"),
		zap.Uint64("seed", seed),
		zap.Int("records", len(records)),
	)

	return &Table{records: records, seed: seed}
}

func pick(recession bool, inRecession, otherwise float64) float64 {
	if recession {
		return inRecession
	}
	return otherwise
}
