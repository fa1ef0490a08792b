package handler

import (
	"mime"
	"net/http"

	"github.com/SergeyBogomolovv/prontix-store/pkg/utils"
)

type downloadQuery struct {
	Token string `validate:"required"`
	Slug  string `validate:"required"`
}

// Download отдаёт купленный файл по токену заказа.
// @Summary      Скачать товар
// @Description  Отдаёт файл, если токен принадлежит оплаченному заказу с этим товаром
// @Tags         downloads
// @Produce      octet-stream
// @Param        token  query     string  true  "Токен доступа заказа"
// @Param        slug   query     string  true  "Slug товара"
// @Success      200    {file}    file
// @Failure      400    {object}  utils.ValidationErrorResponse "Нет токена или slug"
// @Failure      403    {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      404    {object}  utils.ErrorResponse "Товар или файл не найден"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /download [get]
func (h *HTTPHandler) Download(w http.ResponseWriter, r *http.Request) {
	q := downloadQuery{
		Token: r.URL.Query().Get("token"),
		Slug:  r.URL.Query().Get("slug"),
	}
	if err := h.validate.Struct(q); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	dl, err := h.downloads.RequestDownload(r.Context(), q.Token, q.Slug)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer dl.Content.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": dl.Name}))
	w.Header().Set("Cache-Control", "no-store")

	http.ServeContent(w, r, dl.Name, dl.ModTime, dl.Content)
}
