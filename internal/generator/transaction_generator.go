package generator

import (
	"fmt"
	"math/rand"
	"time"

	"bank-fraud-pipeline/internal/models"
)

var geoRegions = []string{"US", "EU", "APAC", "LATAM"}

type TransactionGenerator struct {
	rand *rand.Rand
}

func NewTransactionGenerator() *TransactionGenerator {
	return &TransactionGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateScenario генерирует пакет транзакций для заданного сценария.
// Сценарии повторяют типовые срабатывания правил: clean (без флагов),
// large (крупная сумма), failed_logins (серия неудачных входов),
// geo (смена региона между событиями одного счета).
func (g *TransactionGenerator) GenerateScenario(scenario string) []*models.SubmitTransactionRequest {
	accountID := fmt.Sprintf("ACC%d", 1000000000+g.rand.Int63n(8999999999))

	switch scenario {
	case "large":
		return g.generateLarge(accountID)
	case "failed_logins":
		return g.generateFailedLogins(accountID)
	case "geo":
		return g.generateGeoMismatch(accountID)
	default:
		return g.generateClean(accountID)
	}
}

// generateClean генерирует одну транзакцию ниже всех порогов
func (g *TransactionGenerator) generateClean(accountID string) []*models.SubmitTransactionRequest {
	region := geoRegions[g.rand.Intn(len(geoRegions))]
	return []*models.SubmitTransactionRequest{{
		AccountID:       accountID,
		Amount:          float64(100 + g.rand.Intn(3000)),
		TransactionType: "purchase",
		GeoRegion:       region,
		LoginStatus:     models.LoginStatusSuccess,
	}}
}

// generateLarge генерирует транзакцию выше абсолютного порога для нового счета
func (g *TransactionGenerator) generateLarge(accountID string) []*models.SubmitTransactionRequest {
	return []*models.SubmitTransactionRequest{{
		AccountID:       accountID,
		Amount:          float64(6000 + g.rand.Intn(20000)),
		TransactionType: "withdrawal",
	}}
}

// generateFailedLogins генерирует серию неудачных входов и затем небольшую
// транзакцию, которая должна сработать по правилу неудачных входов
func (g *TransactionGenerator) generateFailedLogins(accountID string) []*models.SubmitTransactionRequest {
	region := geoRegions[g.rand.Intn(len(geoRegions))]

	batch := make([]*models.SubmitTransactionRequest, 0, 4)
	for i := 0; i < 3; i++ {
		batch = append(batch, &models.SubmitTransactionRequest{
			AccountID:       accountID,
			Amount:          0,
			TransactionType: "login",
			GeoRegion:       region,
			LoginStatus:     models.LoginStatusFail,
		})
	}
	batch = append(batch, &models.SubmitTransactionRequest{
		AccountID:       accountID,
		Amount:          float64(50 + g.rand.Intn(500)),
		TransactionType: "purchase",
		GeoRegion:       region,
		LoginStatus:     models.LoginStatusSuccess,
	})
	return batch
}

// generateGeoMismatch генерирует вход в одном регионе и транзакцию в другом
func (g *TransactionGenerator) generateGeoMismatch(accountID string) []*models.SubmitTransactionRequest {
	first := g.rand.Intn(len(geoRegions))
	second := (first + 1 + g.rand.Intn(len(geoRegions)-1)) % len(geoRegions)

	return []*models.SubmitTransactionRequest{
		{
			AccountID:       accountID,
			Amount:          0,
			TransactionType: "login",
			GeoRegion:       geoRegions[first],
			LoginStatus:     models.LoginStatusSuccess,
		},
		{
			AccountID:       accountID,
			Amount:          float64(100 + g.rand.Intn(1000)),
			TransactionType: "purchase",
			GeoRegion:       geoRegions[second],
			LoginStatus:     models.LoginStatusSuccess,
		},
	}
}
