package handler

import "creditdesk/internal/domain/entity"

// Fixture data for the development stub. One user deliberately has an empty
// ledger so the export placeholder path can be exercised end to end.
func seedUsers() []entity.User {
	return []entity.User{
		{
			UserID:        "u-1001",
			Username:      "Alice Tan",
			PhoneNumber:   "+60123456789",
			Email:         "alice.tan@example.com",
			DOB:           "1992-04-17",
			Height:        "165",
			Weight:        "54",
			Gender:        "female",
			BloodGroup:    "O+",
			CreditBalance: 420.5,
		},
		{
			UserID:        "u-1002",
			Username:      "bob lim",
			PhoneNumber:   "+60198765432",
			Email:         "bob.lim@example.com",
			DOB:           "1988-11-02",
			Height:        "178",
			Weight:        "82",
			Gender:        "male",
			BloodGroup:    "A-",
			CreditBalance: 75,
		},
		{
			UserID:        "u-1003",
			Username:      "ALICIA Wong",
			PhoneNumber:   "+60171112222",
			Email:         "alicia.wong@example.com",
			DOB:           "1999-06-30",
			Height:        "160",
			Weight:        "49",
			Gender:        "female",
			BloodGroup:    "B+",
			CreditBalance: 0,
		},
	}
}

func seedLedgers() map[string][]entity.Transaction {
	return map[string][]entity.Transaction{
		"u-1001": {
			{
				TransactionType: entity.TransactionEarn,
				ActivityType:    "topup",
				Amount:          50,
				CreatedAt:       "2024-01-01T00:00:00Z",
			},
			{
				TransactionType: entity.TransactionSpent,
				ActivityType:    "voucher redemption",
				Amount:          12.5,
				CreatedAt:       "2024-02-14T09:30:00Z",
			},
		},
		"u-1002": {
			{
				TransactionType: entity.TransactionEarn,
				ActivityType:    "referral bonus",
				Amount:          25,
				CreatedAt:       "2024-03-03T18:45:00Z",
			},
		},
		// u-1003 has no transactions.
	}
}
