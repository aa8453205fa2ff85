package middlewares

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/users-crud/internal/logger"
	"github.com/sbilibin2017/users-crud/internal/models"
)

// TxMiddleware runs the handler inside a database transaction.
// The transaction commits only when the handler answers with a status below 400
// and rolls back on any other status or on panic. The response is held back
// until the commit succeeds, so a failed commit still reaches the client as a 500.
// Callbacks registered with AfterCommit run once the commit succeeded.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeInternalError(w)
				return
			}

			finished := false
			defer func() {
				if finished {
					return
				}
				if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
			}()

			bw := &bufferedResponseWriter{header: w.Header(), statusCode: http.StatusOK}
			hooks := &commitHooks{}
			ctx := context.WithValue(setTxToContext(r.Context(), tx), commitHooksKey{}, hooks)
			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusBadRequest {
				finished = true
				if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flushTo(w)
				return
			}

			finished = true
			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeInternalError(w)
				return
			}
			bw.flushTo(w)

			for _, fn := range hooks.fns {
				fn()
			}
		})
	}
}

// bufferedResponseWriter records the status and body until the transaction outcome is known.
type bufferedResponseWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedResponseWriter) Header() http.Header { return bw.header }

func (bw *bufferedResponseWriter) WriteHeader(code int) { bw.statusCode = code }

func (bw *bufferedResponseWriter) Write(b []byte) (int, error) { return bw.body.Write(b) }

func (bw *bufferedResponseWriter) flushTo(w http.ResponseWriter) {
	w.WriteHeader(bw.statusCode)
	_, _ = w.Write(bw.body.Bytes())
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(models.ErrorResponse{Detail: "Internal server error"})
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

type commitHooksKey struct{}

type commitHooks struct {
	fns []func()
}

// AfterCommit runs fn after the request transaction in ctx commits and drops it
// on rollback. Without a request transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	if hooks, ok := ctx.Value(commitHooksKey{}).(*commitHooks); ok {
		hooks.fns = append(hooks.fns, fn)
		return
	}
	fn()
}
