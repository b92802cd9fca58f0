package domain

import "errors"

var (
	ErrNotShopOwner            = errors.New("capability does not own this shop")
	ErrInvalidWithdrawalAmount = errors.New("withdrawal amount exceeds shop balance")
	ErrInvalidQuantity         = errors.New("quantity exceeds available supply")
	ErrInsufficientPayment     = errors.New("payment below required total")
	ErrInvalidItemID           = errors.New("item id out of catalog range")
	ErrInvalidPrice            = errors.New("price must be positive")
	ErrInvalidSupply           = errors.New("supply must be positive")
	ErrItemNotListed           = errors.New("item is not listed")
	ErrAmountOverflow          = errors.New("price times quantity overflows")
	ErrSplitTooLarge           = errors.New("split amount exceeds payment value")
)
