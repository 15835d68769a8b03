package public

import (
	"errors"

	"github.com/visualshop/internal/http/response"
	"github.com/visualshop/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var userScopeErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidUser, code: response.CodeBadRequest, key: "error.user_id_invalid"},
	{target: service.ErrCartBusy, code: response.CodeConflict, key: "error.cart_busy"},
}

var cartMutationErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
}

// 持久化失败不在规则内，统一走兜底并记录原始错误
var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrConflict, code: response.CodeConflict, key: "error.cart_conflict"},
}

var orderQueryErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
}

var productFetchErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var userAuthErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrEmailExists, code: response.CodeBadRequest, key: "error.email_exists"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.login_invalid"},
	{target: service.ErrUserDisabled, code: response.CodeUnauthorized, key: "error.user_disabled"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
}

func respondProductFetchError(c *gin.Context, err error) {
	respondWithMappedError(c, err, productFetchErrorRules, response.CodeInternal, "error.product_fetch_failed")
}

func respondCartFetchError(c *gin.Context, err error) {
	respondWithMappedError(c, err, userScopeErrorRules, response.CodeInternal, "error.cart_fetch_failed")
}

func respondCartMutationError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(userScopeErrorRules, cartMutationErrorRules), response.CodeInternal, "error.cart_update_failed")
}

func respondOrderCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(userScopeErrorRules, orderCreateErrorRules), response.CodeInternal, "error.order_create_failed")
}

func respondOrderQueryError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(userScopeErrorRules, orderQueryErrorRules), response.CodeInternal, "error.order_fetch_failed")
}
