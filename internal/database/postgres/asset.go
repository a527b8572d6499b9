package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// ---- Unique assets ----

const assetColumns = `token_id, owner, asset_type, level, rarity, metadata_uri, is_staked, created_at, last_repaired_at`

func scanAsset(row pgx.Row) (*domain.Asset, error) {
	var (
		a        domain.Asset
		owner    []byte
		repaired pgtype.Timestamptz
	)
	if err := row.Scan(&a.TokenID, &owner, &a.AssetType, &a.Level, &a.Rarity, &a.MetadataURI,
		&a.IsStaked, &a.CreatedAt, &repaired); err != nil {
		return nil, err
	}
	a.Owner = address(owner)
	a.CreatedAt = utc(a.CreatedAt)
	a.LastRepairedAt = utcPtr(repaired)
	return &a, nil
}

func (t *stateTx) InsertAsset(ctx context.Context, a *domain.Asset) (int64, error) {
	id, err := t.nextID(ctx, counterAsset)
	if err != nil {
		return 0, err
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO assets (`+assetColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, a.Owner.Bytes(), string(a.AssetType), a.Level, a.Rarity, a.MetadataURI, a.IsStaked, a.CreatedAt, a.LastRepairedAt)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgWriteFailed, "asset", err)
	}
	return id, nil
}

func (t *stateTx) GetAsset(ctx context.Context, tokenID int64) (*domain.Asset, error) {
	a, err := scanAsset(t.tx.QueryRow(ctx, `SELECT `+assetColumns+` FROM assets WHERE token_id = $1`, tokenID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanFailed, "asset", err)
	}
	return a, nil
}

func (t *stateTx) UpdateAsset(ctx context.Context, a *domain.Asset) error {
	return t.execOne(ctx, domain.ErrAssetNotFound, `
		UPDATE assets
		SET owner = $2, level = $3, metadata_uri = $4, is_staked = $5, last_repaired_at = $6
		WHERE token_id = $1`,
		a.TokenID, a.Owner.Bytes(), a.Level, a.MetadataURI, a.IsStaked, a.LastRepairedAt)
}

func (t *stateTx) ListAssetsByOwner(ctx context.Context, owner common.Address) ([]domain.Asset, error) {
	rows, err := t.tx.Query(ctx, `SELECT `+assetColumns+` FROM assets WHERE owner = $1 ORDER BY token_id`, owner.Bytes())
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, "assets", err)
	}
	defer rows.Close()

	assets := []domain.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, "asset", err)
		}
		assets = append(assets, *a)
	}
	return assets, rows.Err()
}

// ---- Resources ----

const resourceColumns = `id, name, category, rarity, max_supply, total_minted, is_active, created_at`

func scanResourceType(row pgx.Row) (*domain.ResourceType, error) {
	var rt domain.ResourceType
	if err := row.Scan(&rt.ID, &rt.Name, &rt.Category, &rt.Rarity, &rt.MaxSupply, &rt.TotalMinted, &rt.IsActive, &rt.CreatedAt); err != nil {
		return nil, err
	}
	rt.CreatedAt = utc(rt.CreatedAt)
	return &rt, nil
}

func (t *stateTx) InsertResourceType(ctx context.Context, rt *domain.ResourceType) (int64, error) {
	id, err := t.nextID(ctx, counterResourceType)
	if err != nil {
		return 0, err
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO resource_types (`+resourceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, rt.Name, string(rt.Category), rt.Rarity, rt.MaxSupply, rt.TotalMinted, rt.IsActive, rt.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgWriteFailed, "resource type", err)
	}
	return id, nil
}

func (t *stateTx) GetResourceType(ctx context.Context, id int64) (*domain.ResourceType, error) {
	rt, err := scanResourceType(t.tx.QueryRow(ctx, `SELECT `+resourceColumns+` FROM resource_types WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanFailed, "resource type", err)
	}
	return rt, nil
}

func (t *stateTx) UpdateResourceType(ctx context.Context, rt *domain.ResourceType) error {
	return t.execOne(ctx, domain.ErrResourceNotFound, `
		UPDATE resource_types SET total_minted = $2, is_active = $3 WHERE id = $1`,
		rt.ID, rt.TotalMinted, rt.IsActive)
}

func (t *stateTx) ListResourceTypes(ctx context.Context) ([]domain.ResourceType, error) {
	rows, err := t.tx.Query(ctx, `SELECT `+resourceColumns+` FROM resource_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, "resource types", err)
	}
	defer rows.Close()

	types := []domain.ResourceType{}
	for rows.Next() {
		rt, err := scanResourceType(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, "resource type", err)
		}
		types = append(types, *rt)
	}
	return types, rows.Err()
}

func (t *stateTx) GetResourceBalance(ctx context.Context, id int64, account common.Address) (int64, error) {
	var amount int64
	err := t.tx.QueryRow(ctx, `SELECT amount FROM resource_balances WHERE resource_id = $1 AND account = $2`,
		id, account.Bytes()).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf(ErrMsgQueryFailed, "resource balance", err)
	}
	return amount, nil
}

func (t *stateTx) SetResourceBalance(ctx context.Context, id int64, account common.Address, amount int64) error {
	var err error
	if amount == 0 {
		_, err = t.tx.Exec(ctx, `DELETE FROM resource_balances WHERE resource_id = $1 AND account = $2`, id, account.Bytes())
	} else {
		_, err = t.tx.Exec(ctx, `
			INSERT INTO resource_balances (resource_id, account, amount) VALUES ($1, $2, $3)
			ON CONFLICT (resource_id, account) DO UPDATE SET amount = EXCLUDED.amount`,
			id, account.Bytes(), amount)
	}
	if err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, "resource balance", err)
	}
	return nil
}
