package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[int64]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[int64]*domain.User)}
}

func (r *inMemoryUserRepo) add(u *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepo) ListActiveByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.User
	for _, u := range r.users {
		if u.Role == role && u.Active {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	seq     int64
	wallets map[int64]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[int64]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.wallets {
		if existing.WalletAddress == w.WalletAddress {
			return domain.ErrWalletAddressTaken
		}
		if existing.UserID == w.UserID && existing.IsActive {
			return domain.ErrWalletExists
		}
	}
	r.seq++
	now := time.Now().UTC()
	w.ID = r.seq
	w.CreatedAt = now
	w.UpdatedAt = now
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id int64) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetActiveByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.UserID == userID && w.IsActive {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) AdjustBalance(ctx context.Context, tx pgx.Tx, walletID int64, delta int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return 0, fmt.Errorf("wallet %d not found", walletID)
	}
	w.Balance += delta
	w.UpdatedAt = time.Now().UTC()
	return w.Balance, nil
}

func (r *inMemoryWalletRepo) Deactivate(ctx context.Context, walletID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet %d not found", walletID)
	}
	w.IsActive = false
	return nil
}

// --- In-Memory Transaction Repo ---

// inMemoryTransactionRepo enforces the one-active-transaction-per-receipt
// rule the way the partial unique index does in PostgreSQL.
type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	seq          int64
	transactions map[int64]*domain.PaymentTransaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{transactions: make(map[int64]*domain.PaymentTransaction)}
}

// activeFor must be called with r.mu held.
func (r *inMemoryTransactionRepo) activeFor(receiptID, exceptID int64) bool {
	for _, t := range r.transactions {
		if t.ID == exceptID || t.ReceiptID != receiptID {
			continue
		}
		if t.Status == domain.TransactionStatusPending || t.Status == domain.TransactionStatusCompleted {
			return true
		}
	}
	return false
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, txn *domain.PaymentTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.activeFor(txn.ReceiptID, 0) {
		return domain.ErrSettlementInFlight
	}
	r.seq++
	now := time.Now().UTC()
	txn.ID = r.seq
	txn.Status = domain.TransactionStatusPending
	txn.CreatedAt = now
	txn.UpdatedAt = now
	cp := *txn
	r.transactions[txn.ID] = &cp
	return nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id int64) (*domain.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) RecordProgress(ctx context.Context, id int64, externalTransferID *string, meta domain.TransactionMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok || t.Status != domain.TransactionStatusPending {
		return domain.ErrStaleTransition
	}
	if externalTransferID != nil {
		id := *externalTransferID
		t.ExternalTransferID = &id
	}
	t.Metadata = meta
	t.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryTransactionRepo) Transition(ctx context.Context, tx pgx.Tx, st ports.StatusTransition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[st.ID]
	if !ok || t.Status != st.From {
		return domain.ErrStaleTransition
	}
	leavingInactive := st.From != domain.TransactionStatusPending && st.From != domain.TransactionStatusCompleted
	if leavingInactive && st.To == domain.TransactionStatusCompleted && r.activeFor(t.ReceiptID, t.ID) {
		return domain.ErrSettlementInFlight
	}
	t.Status = st.To
	if st.ExternalTransferID != nil {
		id := *st.ExternalTransferID
		t.ExternalTransferID = &id
	}
	t.Metadata = st.Metadata
	t.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryTransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.PaymentTransaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []domain.PaymentTransaction
	for _, t := range r.transactions {
		if t.SenderWalletID != params.WalletID && t.ReceiverWalletID != params.WalletID {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		matched = append(matched, *t)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return []domain.PaymentTransaction{}, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *inMemoryTransactionRepo) Summary(ctx context.Context, walletID int64) (*ports.WalletSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := &ports.WalletSummary{WalletID: walletID}
	for _, t := range r.transactions {
		if t.SenderWalletID != walletID && t.ReceiverWalletID != walletID {
			continue
		}
		s.Total++
		switch t.Status {
		case domain.TransactionStatusPending:
			s.Pending++
		case domain.TransactionStatusCompleted:
			s.Completed++
			if t.SenderWalletID == walletID {
				s.SentTotal += t.Amount
			}
			if t.ReceiverWalletID == walletID {
				s.ReceivedTotal += t.Amount
			}
		case domain.TransactionStatusFailed:
			s.Failed++
		}
	}
	return s, nil
}

func (r *inMemoryTransactionRepo) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]domain.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PaymentTransaction
	for _, t := range r.transactions {
		if t.Status == domain.TransactionStatusPending && t.UpdatedAt.Before(olderThan) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// byReceipt returns every transaction recorded for a receipt.
func (r *inMemoryTransactionRepo) byReceipt(receiptID int64) []domain.PaymentTransaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PaymentTransaction
	for _, t := range r.transactions {
		if t.ReceiptID == receiptID {
			out = append(out, *t)
		}
	}
	return out
}

// --- In-Memory Receipt Repo ---

type inMemoryReceiptRepo struct {
	mu       sync.RWMutex
	receipts map[int64]*domain.Receipt
}

func newInMemoryReceiptRepo() *inMemoryReceiptRepo {
	return &inMemoryReceiptRepo{receipts: make(map[int64]*domain.Receipt)}
}

func (r *inMemoryReceiptRepo) add(rc *domain.Receipt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.receipts[rc.ID] = rc
}

func (r *inMemoryReceiptRepo) GetByID(ctx context.Context, id int64) (*domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rc, ok := r.receipts[id]
	if !ok {
		return nil, nil
	}
	cp := *rc
	return &cp, nil
}

func (r *inMemoryReceiptRepo) MarkPaid(ctx context.Context, tx pgx.Tx, id int64, paidAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rc, ok := r.receipts[id]
	if !ok || rc.IsPaid() {
		return domain.ErrReceiptAlreadyPaid
	}
	rc.Status = domain.ReceiptStatusPaid
	rc.PaidAt = &paidAt
	return nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditLog
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *log)
	return nil
}

func (r *inMemoryAuditRepo) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

// --- In-Memory Webhook Repo ---

type inMemoryWebhookRepo struct {
	mu         sync.Mutex
	deliveries map[string]domain.WebhookDelivery
}

func newInMemoryWebhookRepo() *inMemoryWebhookRepo {
	return &inMemoryWebhookRepo{deliveries: make(map[string]domain.WebhookDelivery)}
}

func (r *inMemoryWebhookRepo) Create(ctx context.Context, d *domain.WebhookDelivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries[d.ID.String()] = *d
	return nil
}

func (r *inMemoryWebhookRepo) Update(ctx context.Context, d *domain.WebhookDelivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries[d.ID.String()] = *d
	return nil
}

func (r *inMemoryWebhookRepo) ListByTransactionID(ctx context.Context, txID int64) ([]domain.WebhookDelivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.WebhookDelivery
	for _, d := range r.deliveries {
		if d.TransactionID == txID {
			out = append(out, d)
		}
	}
	return out, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx; the in-memory repos apply writes immediately.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
