package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrResourceNotFound 在指定资源不存在时返回
	ErrResourceNotFound = errors.New("resource not found")
	// ErrInvalidInput 在输入数据未通过校验时返回，包装首个失败字段的提示
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidOrder 在重排序列包含非法或重复 ID 时返回
	ErrInvalidOrder = errors.New("invalid sort order")
)

// 每个可排序资源共用同一套列表/删除/追加排序逻辑，
// 排序键为 sort_order，平级时按插入顺序（主键）稳定排列。

// listOrdered returns all rows of T ordered by sort_order then id.
func listOrdered[T any](gdb *gorm.DB) ([]T, error) {
	var items []T
	if err := gdb.Model(new(T)).Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return items, nil
}

// findByID loads one row of T by primary key.
func findByID[T any](gdb *gorm.DB, id uint) (*T, error) {
	var item T
	if err := gdb.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("find resource: %w", err)
	}
	return &item, nil
}

// deleteByID removes one row of T. Deleting a missing id reports
// ErrResourceNotFound instead of silently succeeding.
func deleteByID[T any](gdb *gorm.DB, id uint) error {
	result := gdb.Unscoped().Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("delete resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrResourceNotFound
	}
	return nil
}

// nextSortOrder appends behind the current maximum sort value.
func nextSortOrder[T any](gdb *gorm.DB) (int, error) {
	var maxSort int
	if err := gdb.Model(new(T)).Select("COALESCE(MAX(sort_order), -1)").Scan(&maxSort).Error; err != nil {
		return 0, fmt.Errorf("resolve sort order: %w", err)
	}
	return maxSort + 1, nil
}

// resolveSort 在未显式传入排序值时自动追加到末尾
func resolveSort[T any](gdb *gorm.DB, sortPtr *int) (int, error) {
	if sortPtr != nil {
		return *sortPtr, nil
	}
	return nextSortOrder[T](gdb)
}

// reorder rewrites sort_order following the given id sequence inside one
// transaction. Ids absent from the sequence keep their current value.
func reorder[T any](gdb *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			return ErrInvalidOrder
		}
		if _, ok := seen[id]; ok {
			return ErrInvalidOrder
		}
		seen[id] = struct{}{}
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		for idx, id := range ids {
			result := tx.Model(new(T)).Where("id = ?", id).Update("sort_order", idx)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrResourceNotFound
			}
		}
		return nil
	})
}
