package reputation

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/hakem-ai/compare-cli/internal/model"
)

// DefaultRecords returns the built-in Saudi insurance market ranking. Scores
// reflect published reputation and financial stability data; aliases cover
// the spellings and Arabic names that appear in quote documents.
func DefaultRecords() []model.ReputationRecord {
	return []model.ReputationRecord{
		{CompanyName: "Tawuniya", Score: 0.96, Tier: model.TierPremium, Rank: 1,
			Aliases: []string{"The Company for Cooperative Insurance (Tawuniya)", "Company for Cooperative Insurance", "التعاونية"}},
		{CompanyName: "Walaa Cooperative Insurance Company", Score: 0.92, Tier: model.TierPremium, Rank: 2,
			Aliases: []string{"Walaa", "ولاء"}},
		{CompanyName: "Mediterranean and Gulf Insurance", Score: 0.92, Tier: model.TierPremium, Rank: 3,
			Aliases: []string{"MedGulf", "MedGulf Insurance", "ميدغلف"}},
		{CompanyName: "Gulf Insurance Group", Score: 0.88, Tier: model.TierStrong, Rank: 4,
			Aliases: []string{"GIG", "Gulf Insurance Group (GIG)", "جي اي جي"}},
		{CompanyName: "Gulf General Cooperative Insurance Company", Score: 0.88, Tier: model.TierStrong, Rank: 5,
			Aliases: []string{"GGI"}},
		{CompanyName: "Al-Etihad Cooperative Insurance Co.", Score: 0.88, Tier: model.TierStrong, Rank: 6,
			Aliases: []string{"Al-Etihad", "Al Etihad"}},
		{CompanyName: "Wataniya Insurance", Score: 0.88, Tier: model.TierStrong, Rank: 7,
			Aliases: []string{"Wataniya", "الوطنية", "الوطنية للتأمين"}},
		{CompanyName: "Malath Cooperative Insurance Company", Score: 0.84, Tier: model.TierSolid, Rank: 8,
			Aliases: []string{"Malath", "Malath Cooperative Insurance", "ملاذ", "ملاذ للتأمين"}},
		{CompanyName: "Liva Insurance Company", Score: 0.84, Tier: model.TierSolid, Rank: 9,
			Aliases: []string{"Liva", "Liva Insurance", "ليفا"}},
		{CompanyName: "Chubb Arabia Cooperative Insurance Company", Score: 0.80, Tier: model.TierBaseline, Rank: 10,
			Aliases: []string{"Chubb", "Chubb Arabia", "تشب"}},
		{CompanyName: "Arabian Shield Cooperative Insurance Company", Score: 0.80, Tier: model.TierBaseline, Rank: 11,
			Aliases: []string{"Arabian Shield"}},
		{CompanyName: "Allied Cooperative Insurance Group", Score: 0.80, Tier: model.TierBaseline, Rank: 12,
			Aliases: []string{"ACIG"}},
		{CompanyName: "Saudi Arabian Cooperative Insurance Company", Score: 0.80, Tier: model.TierBaseline, Rank: 13,
			Aliases: []string{"SAICO"}},
		{CompanyName: "Salama Cooperative Insurance Company", Score: 0.80, Tier: model.TierBaseline, Rank: 14,
			Aliases: []string{"Salama", "Salama Insurance", "سلامة"}},
		{CompanyName: "Al Jazeera Takaful Company", Score: 0.80, Tier: model.TierBaseline, Rank: 15,
			Aliases: []string{"AJTC"}},
		{CompanyName: "Arab Cooperative Insurance Company", Score: 0.80, Tier: model.TierBaseline, Rank: 16,
			Aliases: []string{"ACIC", "Arabia Insurance Cooperative Company (AICC)", "Arabia Insurance Cooperative Company", "AICC", "العربية للتأمين"}},
		{CompanyName: "Al-Sagr Cooperative Insurance Company", Score: 0.80, Tier: model.TierBaseline, Rank: 17,
			Aliases: []string{"Al-Sagr", "Al Sagr", "Al Sagr Co-operative Insurance Company", "Al Sagr Cooperative Insurance Company", "AlSagr"}},
		{CompanyName: "Amanah Cooperative Insurance Company", Score: 0.80, Tier: model.TierBaseline, Rank: 18,
			Aliases: []string{"Amanah"}},
		{CompanyName: "Mutakamela Insurance", Score: 0.80, Tier: model.TierBaseline, Rank: 19,
			Aliases: []string{"Mutakamela"}},
		{CompanyName: "Al Rajhi Takaful", Score: 0.80, Tier: model.TierBaseline, Rank: 20,
			Aliases: []string{"ART", "Al Rajhi Takaful Company"}},
		{CompanyName: "Gulf Union Cooperative Insurance Company", Score: 0.72, Tier: model.TierChallenged, Rank: 21,
			Aliases: []string{"Gulf Union"}},
		{CompanyName: "United Cooperative Assurance Company", Score: 0.72, Tier: model.TierChallenged, Rank: 22,
			Aliases: []string{"UCA", "United Cooperative Assurance (UCA)", "المتحدة", "المتحدة للتأمين"}},
		{CompanyName: "AXA Cooperative Insurance Company", Score: 0.85, Tier: model.TierStrong, Rank: 23,
			Aliases: []string{"AXA", "AXA Gulf", "أكسا"}},
		{CompanyName: "Allianz Saudi Fransi Cooperative Insurance Company", Score: 0.86, Tier: model.TierStrong, Rank: 24,
			Aliases: []string{"Allianz", "Allianz Saudi Fransi", "أليانز"}},
		{CompanyName: "Zurich Insurance", Score: 0.87, Tier: model.TierStrong, Rank: 25,
			Aliases: []string{"Zurich", "زيورخ"}},
		{CompanyName: "Tokio Marine Saudi Arabia", Score: 0.83, Tier: model.TierSolid, Rank: 26,
			Aliases: []string{"Tokio Marine", "توكيو مارين"}},
	}
}

// Seed upserts the built-in market table into the store. Existing records
// with the same canonical name are overwritten. Returns the record count.
func Seed(ctx context.Context, store Store) (int, error) {
	records := DefaultRecords()
	for _, rec := range records {
		if err := store.Upsert(ctx, rec); err != nil {
			return 0, eris.Wrapf(err, "reputation: seed %s", rec.CompanyName)
		}
	}
	zap.L().Info("reputation: seeded default market table", zap.Int("records", len(records)))
	return len(records), nil
}
