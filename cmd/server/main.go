package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kiblykat/bank-interest-app/internal/dates"
	"github.com/kiblykat/bank-interest-app/internal/events/kafka"
	"github.com/kiblykat/bank-interest-app/internal/interest"
	"github.com/kiblykat/bank-interest-app/internal/interfaces"
	"github.com/kiblykat/bank-interest-app/internal/ledger"
	"github.com/kiblykat/bank-interest-app/internal/models/events"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var publisher interfaces.EventPublisher = interfaces.NoopPublisher{}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		p := kafka.NewPublisher(strings.Split(brokers, ","))
		defer p.Close()
		publisher = p
		logger.Info("kafka publisher enabled", zap.String("brokers", brokers))
	}

	rules := interest.NewRuleSet()
	bank := ledger.NewLedger(rules)

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			AccountID string `json:"account_id"`
			Date      string `json:"date"`
			Type      string `json:"type"`
			Amount    string `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		txn, err := bank.PostTransaction(req.AccountID, req.Date, req.Type, req.Amount)
		if err != nil {
			logger.Info("transaction rejected",
				zap.String("account", req.AccountID), zap.Error(err))
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		logger.Info("transaction posted",
			zap.String("account", txn.AccountID),
			zap.String("txn_id", txn.TxnID),
			zap.String("kind", string(txn.Kind)))

		if err := publisher.Publish(kafka.TopicTransactionPosted, events.TransactionPosted{
			EventID:    uuid.New().String(),
			AccountID:  txn.AccountID,
			TxnID:      txn.TxnID,
			Kind:       string(txn.Kind),
			Amount:     txn.Amount,
			Date:       txn.Date.String(),
			OccurredAt: time.Now().UTC(),
		}); err != nil {
			logger.Warn("event publish failed", zap.Error(err))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(struct {
			AccountID string `json:"account_id"`
			TxnID     string `json:"txn_id"`
			Date      string `json:"date"`
			Type      string `json:"type"`
			Amount    string `json:"amount"`
		}{
			AccountID: txn.AccountID,
			TxnID:     txn.TxnID,
			Date:      txn.Date.String(),
			Type:      string(txn.Kind),
			Amount:    txn.Amount.StringFixed(2),
		})
	})

	mux.HandleFunc("/interest-rules", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			type ruleOut struct {
				Date   string `json:"date"`
				RuleID string `json:"rule_id"`
				Rate   string `json:"rate"`
			}
			out := []ruleOut{}
			for _, rule := range bank.InterestRules() {
				out = append(out, ruleOut{
					Date:   rule.EffectiveDate.String(),
					RuleID: rule.RuleID,
					Rate:   rule.AnnualRatePercent.String(),
				})
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(out)

		case http.MethodPost:
			var req struct {
				Date   string `json:"date"`
				RuleID string `json:"rule_id"`
				Rate   string `json:"rate"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}

			rule, err := bank.UpsertInterestRule(req.Date, req.RuleID, req.Rate)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			logger.Info("interest rule defined",
				zap.String("rule_id", rule.RuleID),
				zap.String("effective", rule.EffectiveDate.String()))

			if err := publisher.Publish(kafka.TopicInterestRuleDefined, events.InterestRuleDefined{
				EventID:           uuid.New().String(),
				RuleID:            rule.RuleID,
				EffectiveDate:     rule.EffectiveDate.String(),
				AnnualRatePercent: rule.AnnualRatePercent,
				OccurredAt:        time.Now().UTC(),
			}); err != nil {
				logger.Warn("event publish failed", zap.Error(err))
			}

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"status":"rule defined"}`))

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/statements", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		accountID := r.URL.Query().Get("account_id")
		if accountID == "" {
			http.Error(w, "account_id is a mandatory field", http.StatusBadRequest)
			return
		}

		stmt, err := bank.FullStatement(accountID)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(stmt.Render()))
	})

	mux.HandleFunc("/statements/monthly", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		accountID := r.URL.Query().Get("account_id")
		if accountID == "" {
			http.Error(w, "account_id is a mandatory field", http.StatusBadRequest)
			return
		}
		year, month, err := dates.ParseMonth(r.URL.Query().Get("month"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		stmt, err := bank.MonthlyStatement(accountID, year, month)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(stmt.Render()))
	})

	mux.HandleFunc("/accounts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(bank.Accounts())
	})

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logger.Info("starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
