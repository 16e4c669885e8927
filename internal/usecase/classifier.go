package usecase

import (
	"strings"

	"github.com/NasaVasa/radarbot/internal/domain"
)

// Rule order is significant: the first matching keyword set wins, so a
// protocol naming both a rollup and a swap lands in L1/L2.
var classifierRules = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryL1L2, []string{"layer1", "layer 1", "l1", "layer2", "l2", "rollup", "zk", "modular"}},
	{domain.CategoryPerpDEX, []string{"perp", "perpetual", "futures"}},
	{domain.CategoryDEX, []string{"dex", "swap", "amm"}},
	{domain.CategoryDeFi, []string{"defi", "lending", "borrow", "yield"}},
	{domain.CategoryNFT, []string{"nft", "collectible"}},
	{domain.CategoryGaming, []string{"game", "metaverse"}},
	{domain.CategoryAIInfra, []string{"ai", "oracle", "data", "analytics"}},
}

// Classify maps a protocol's free-text category label and name to one label
// of the fixed taxonomy. Every input resolves; no keyword means General.
func Classify(category, name string) domain.Category {
	text := strings.ToLower(category + " " + name)
	for _, rule := range classifierRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.category
			}
		}
	}
	return domain.CategoryGeneral
}
