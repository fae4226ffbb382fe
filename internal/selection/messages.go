package selection

// Request is the body of a bulk delete call from the page.
type Request struct {
	IDs     []string `json:"ids"`
	Confirm bool     `json:"confirm"`
}

// Messages are the texts a page shows around a bulk delete.
type Messages struct {
	Empty       string
	Confirm     string
	Deleted     string
	Cancelled   string
	Aborted     string
	Failed      string
	Unreachable string
}

// Result is the page-facing report of a bulk delete.
type Result struct {
	Outcome string `json:"outcome"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

func (o Outcome) String() string {
	switch o {
	case Deleted:
		return "deleted"
	case Cancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// Report describes a finished delete of count rows.
func (m Messages) Report(o Outcome, count int) Result {
	r := Result{Outcome: o.String(), Count: count, Message: m.Deleted}
	if o == Cancelled {
		r.Count = 0
		r.Message = m.Cancelled
	}
	return r
}

// Books, Authors and Publishers hold the texts of the three list pages.
var (
	Books = Messages{
		Empty:       "Пожалуйста, выберите хотя бы одну книгу для удаления.",
		Confirm:     "Вы уверены, что хотите удалить выбранные книги?",
		Deleted:     "Выбранные книги успешно удалены.",
		Aborted:     "Удаление отменено.",
		Failed:      "Произошла ошибка при удалении книг.",
		Unreachable: "Произошла ошибка при удалении книг.",
	}
	Authors = Messages{
		Empty:       "Пожалуйста, выберите хотя бы одного автора для удаления.",
		Confirm:     "Удалить выбранных авторов вместе со всеми их книгами (если у книги нет других соавторов)?",
		Deleted:     "Выбранные авторы и их книги успешно удалены.",
		Cancelled:   "Удаление отменено пользователем. Ничего не произошло.",
		Failed:      "Произошла ошибка при удалении авторов.",
		Unreachable: "Не удалось удалить авторов.",
	}
	Publishers = Messages{
		Empty:       "Пожалуйста, выберите хотя бы одно издательство для удаления.",
		Confirm:     "Вы уверены, что хотите удалить выбранные издательства? Все книги данных издательств тоже будут удалены!",
		Deleted:     "Выбранные издательства (и их книги) успешно удалены.",
		Aborted:     "Удаление отменено.",
		Failed:      "Не удалось удалить издательства. Возможно, некоторые не найдены.",
		Unreachable: "Произошла ошибка при удалении издательств.",
	}
)
