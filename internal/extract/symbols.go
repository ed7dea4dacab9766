package extract

import "sort"

// symbolTable maps uppercased company names to ticker symbols. Immutable
// configuration data, loaded once; lookups never mutate it. Short aliases like
// GOOG are listed as literal keys so the fuzzy fallback never has to resolve them.
var symbolTable = map[string]string{
	// Technology
	"APPLE":                           "AAPL",
	"APPLE INC":                       "AAPL",
	"MICROSOFT":                       "MSFT",
	"MICROSOFT CORP":                  "MSFT",
	"MICROSOFT CORPORATION":           "MSFT",
	"GOOGLE":                          "GOOGL",
	"GOOG":                            "GOOGL",
	"ALPHABET":                        "GOOGL",
	"ALPHABET INC":                    "GOOGL",
	"AMAZON":                          "AMZN",
	"AMAZON.COM":                      "AMZN",
	"AMAZON COM":                      "AMZN",
	"TESLA":                           "TSLA",
	"TESLA INC":                       "TSLA",
	"TESLA MOTORS":                    "TSLA",
	"META":                            "META",
	"META PLATFORMS":                  "META",
	"FACEBOOK":                        "META",
	"NETFLIX":                         "NFLX",
	"NETFLIX INC":                     "NFLX",
	"PAYPAL":                          "PYPL",
	"PAYPAL HOLDINGS":                 "PYPL",
	"NVIDIA":                          "NVDA",
	"NVIDIA CORP":                     "NVDA",
	"NVIDIA CORPORATION":              "NVDA",
	"INTEL":                           "INTC",
	"INTEL CORP":                      "INTC",
	"INTEL CORPORATION":               "INTC",
	"ADOBE":                           "ADBE",
	"ADOBE INC":                       "ADBE",
	"SALESFORCE":                      "CRM",
	"SALESFORCE.COM":                  "CRM",
	"ORACLE":                          "ORCL",
	"ORACLE CORP":                     "ORCL",
	"ORACLE CORPORATION":              "ORCL",
	"IBM":                             "IBM",
	"INTERNATIONAL BUSINESS MACHINES": "IBM",
	"CISCO":                           "CSCO",
	"CISCO SYSTEMS":                   "CSCO",
	"QUALCOMM":                        "QCOM",
	"QUALCOMM INC":                    "QCOM",
	"BROADCOM":                        "AVGO",
	"BROADCOM INC":                    "AVGO",
	"ADVANCED MICRO DEVICES":          "AMD",
	"AMD":                             "AMD",

	// Financial services
	"BERKSHIRE HATHAWAY": "BRK.A",
	"BERKSHIRE":          "BRK.A",
	"JPMORGAN":           "JPM",
	"JP MORGAN":          "JPM",
	"JPMORGAN CHASE":     "JPM",
	"BANK OF AMERICA":    "BAC",
	"WELLS FARGO":        "WFC",
	"GOLDMAN SACHS":      "GS",
	"MORGAN STANLEY":     "MS",
	"AMERICAN EXPRESS":   "AXP",
	"VISA":               "V",
	"VISA INC":           "V",
	"MASTERCARD":         "MA",
	"MASTERCARD INC":     "MA",

	// Healthcare and pharma
	"JOHNSON & JOHNSON":     "JNJ",
	"JOHNSON AND JOHNSON":   "JNJ",
	"PFIZER":                "PFE",
	"PFIZER INC":            "PFE",
	"MODERNA":               "MRNA",
	"MODERNA INC":           "MRNA",
	"ABBVIE":                "ABBV",
	"ABBVIE INC":            "ABBV",
	"MERCK":                 "MRK",
	"MERCK & CO":            "MRK",
	"BRISTOL MYERS SQUIBB":  "BMY",
	"BRISTOL-MYERS SQUIBB":  "BMY",
	"ELI LILLY":             "LLY",
	"LILLY":                 "LLY",
	"UNITEDHEALTH":          "UNH",
	"UNITED HEALTH":         "UNH",
	"UNITEDHEALTH GROUP":    "UNH",

	// Consumer and retail
	"WALMART":                 "WMT",
	"WALMART INC":             "WMT",
	"PROCTER & GAMBLE":        "PG",
	"PROCTER AND GAMBLE":      "PG",
	"COCA COLA":               "KO",
	"COCA-COLA":               "KO",
	"PEPSI":                   "PEP",
	"PEPSICO":                 "PEP",
	"NIKE":                    "NKE",
	"NIKE INC":                "NKE",
	"MCDONALD'S":              "MCD",
	"MCDONALDS":               "MCD",
	"STARBUCKS":               "SBUX",
	"STARBUCKS CORP":          "SBUX",
	"HOME DEPOT":              "HD",
	"THE HOME DEPOT":          "HD",
	"DISNEY":                  "DIS",
	"WALT DISNEY":             "DIS",
	"THE WALT DISNEY COMPANY": "DIS",

	// Industrial and energy
	"EXXON MOBIL":      "XOM",
	"EXXON":            "XOM",
	"CHEVRON":          "CVX",
	"CHEVRON CORP":     "CVX",
	"GENERAL ELECTRIC": "GE",
	"GE":               "GE",
	"BOEING":           "BA",
	"BOEING CO":        "BA",
	"CATERPILLAR":      "CAT",
	"CATERPILLAR INC":  "CAT",
	"3M":               "MMM",
	"3M COMPANY":       "MMM",

	// Communication services
	"VERIZON":                "VZ",
	"VERIZON COMMUNICATIONS": "VZ",
	"AT&T":                   "T",
	"ATT":                    "T",
	"COMCAST":                "CMCSA",
	"COMCAST CORP":           "CMCSA",
	"TWITTER":                "TWTR",
	"TWITTER INC":            "TWTR",

	// EVs and autos
	"RIVIAN":             "RIVN",
	"RIVIAN AUTOMOTIVE":  "RIVN",
	"LUCID":              "LCID",
	"LUCID MOTORS":       "LCID",
	"LUCID GROUP":        "LCID",
	"NIO":                "NIO",
	"NIO INC":            "NIO",
	"FORD":               "F",
	"FORD MOTOR":         "F",
	"FORD MOTOR COMPANY": "F",
	"GENERAL MOTORS":     "GM",
	"GM":                 "GM",

	// Crypto-adjacent
	"COINBASE":           "COIN",
	"COINBASE GLOBAL":    "COIN",
	"MICROSTRATEGY":      "MSTR",
	"MICROSTRATEGY INC":  "MSTR",

	// Emerging tech
	"PALANTIR":                  "PLTR",
	"PALANTIR TECHNOLOGIES":     "PLTR",
	"SNOWFLAKE":                 "SNOW",
	"SNOWFLAKE INC":             "SNOW",
	"ZOOM":                      "ZM",
	"ZOOM VIDEO":                "ZM",
	"ZOOM VIDEO COMMUNICATIONS": "ZM",
	"SLACK":                     "WORK",
	"SLACK TECHNOLOGIES":        "WORK",
	"SHOPIFY":                   "SHOP",
	"SHOPIFY INC":               "SHOP",
	"SQUARE":                    "SQ",
	"BLOCK":                     "SQ",
	"BLOCK INC":                 "SQ",
	"UBER":                      "UBER",
	"UBER TECHNOLOGIES":         "UBER",
	"LYFT":                      "LYFT",
	"LYFT INC":                  "LYFT",
	"AIRBNB":                    "ABNB",
	"AIRBNB INC":                "ABNB",
	"DOORDASH":                  "DASH",
	"DOORDASH INC":              "DASH",
	"SPOTIFY":                   "SPOT",
	"SPOTIFY TECHNOLOGY":        "SPOT",
	"ROBLOX":                    "RBLX",
	"ROBLOX CORP":               "RBLX",
	"PELOTON":                   "PTON",
	"PELOTON INTERACTIVE":       "PTON",
}

// knownSymbols is the set of ticker symbols appearing as values in symbolTable.
var knownSymbols = func() map[string]bool {
	set := make(map[string]bool, len(symbolTable))
	for _, sym := range symbolTable {
		set[sym] = true
	}
	return set
}()

// symbolNames holds the table's company names in sorted order. Name matching
// iterates this slice instead of the map so ties resolve the same way on
// every call.
var symbolNames = func() []string {
	names := make([]string, 0, len(symbolTable))
	for name := range symbolTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()
