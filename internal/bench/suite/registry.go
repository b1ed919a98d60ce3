package suite

import (
	"fmt"
	"sort"
)

// The fixtures below must not change between two compared runs. Any edit is a
// new suite version.

func V1() *Suite {
	return &Suite{
		Name:        "juridique-keywords",
		Description: "Reference questions judged by keyword presence",
		Version:     VersionV1,
		Queries: []Query{
			{
				ID:       "Q1",
				Question: "Dans quels cas un CDI peut-il être rompu sans préavis ?",
				Intent:   "rupture_sans_preavis",
				Notes:    "Cas de rupture immédiate du CDI",
				Oracle: OracleSpec{Keywords: &KeywordSpec{Keywords: []string{
					"faute grave",
					"faute lourde",
					"sans préavis",
					"privation de préavis",
					"L1234",
				}}},
			},
			{
				ID:       "Q2",
				Question: "Qu'est-ce qu'un licenciement pour motif économique ?",
				Intent:   "licenciement_economique",
				Notes:    "Définition juridique du motif économique",
				Oracle: OracleSpec{Keywords: &KeywordSpec{Keywords: []string{
					"licenciement pour motif économique",
					"motif économique",
					"L1233",
				}}},
			},
			{
				ID:       "Q3",
				Question: "Un salarié peut-il contester un licenciement ?",
				Intent:   "contestation_licenciement",
				Notes:    "Voies de recours contre un licenciement",
				Oracle: OracleSpec{Keywords: &KeywordSpec{Keywords: []string{
					"contestation",
					"contestations",
					"sanctions",
					"irrégularités",
					"recours",
					"conseil de prud'hommes",
				}}},
			},
		},
	}
}

// V2 judges by article reference (meta.num prefix). Prefixes are wide on
// purpose: the target is the right zone of the code, e.g. L1234* for notice.
func V2() *Suite {
	return &Suite{
		Name:        "juridique-articles",
		Description: "Reference questions judged by meta.num prefix with keyword fallback",
		Version:     VersionV2,
		Queries: []Query{
			{
				ID:       "Q1",
				Question: "Dans quels cas un CDI peut-il être rompu sans préavis ?",
				Oracle: OracleSpec{Article: &ArticleSpec{
					NumPrefixes: []string{"L1234"},
					FallbackKeywords: []string{
						"préavis",
						"indemnité compensatrice",
						"faute grave",
						"faute lourde",
					},
				}},
			},
			{
				ID:       "Q2",
				Question: "Qu'est-ce qu'un licenciement pour motif économique ?",
				Oracle: OracleSpec{Article: &ArticleSpec{
					NumPrefixes: []string{"L1233"},
					FallbackKeywords: []string{
						"motif économique",
						"difficultés économiques",
						"mutations technologiques",
						"suppression",
						"transformation d'emploi",
					},
				}},
			},
			{
				ID:       "Q3",
				Question: "Un salarié peut-il contester un licenciement ?",
				Oracle: OracleSpec{Article: &ArticleSpec{
					NumPrefixes: []string{
						"L1471", // prescription, prud'homal time limits
						"L1235", // dismissal litigation
					},
					FallbackKeywords: []string{
						"prud'hom",
						"saisine",
						"délai",
						"prescription",
						"contestation",
					},
				}},
			},
		},
	}
}

var registry = map[string]func() *Suite{
	VersionV1: V1,
	VersionV2: V2,
}

// Get returns a fresh copy of the suite registered under version.
func Get(version string) (*Suite, error) {
	build, ok := registry[version]
	if !ok {
		return nil, fmt.Errorf("unknown suite version %q, expected one of %v", version, Versions())
	}
	return build(), nil
}

func Versions() []string {
	versions := make([]string, 0, len(registry))
	for v := range registry {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}
