package lang

var messages = map[MessageID]map[string]string{
	ChooseLanguageMsgID: {
		"en": "Please choose your language.",
		"hy": "Խնդրում եմ ընտրեք լեզուն։",
		"ru": "Пожалуйста, выберите язык.",
	},
	SendLinkMsgID: {
		"en": "Send a YouTube link.",
		"hy": "Ուղարկեք YouTube հղումը։",
		"ru": "Отправьте ссылку на YouTube.",
	},
	DownloadingMsgID: {
		"en": "⏳ Downloading and processing...",
		"hy": "⏳ Ներբեռնում և մշակում...",
		"ru": "⏳ Загрузка и обработка...",
	},
	ProgressMsgID: {
		"en": "⏳ Downloading... %d%%",
		"hy": "⏳ Ներբեռնում... %d%%",
		"ru": "⏳ Загрузка... %d%%",
	},
	FinishedMsgID: {
		"en": "✅ Download finished.",
		"hy": "✅ Ներբեռնումը ավարտված է։",
		"ru": "✅ Загрузка завершена.",
	},
	ErrorMsgID: {
		"en": "❌ Error: %s",
		"hy": "❌ Սխալ՝ %s",
		"ru": "❌ Ошибка: %s",
	},
	FileTooBigMsgID: {
		"en": "❌ File is too big for Telegram (limit is ~50MB).",
		"hy": "❌ Ֆայլը մեծ է Telegram-ի համար (սահմանը ~50ՄԲ է)։",
		"ru": "❌ Файл слишком большой для Telegram (лимит ~50MB).",
	},
	InvalidLinkMsgID: {
		"en": "Invalid link. Send a YouTube link.",
		"hy": "Սխալ հղում։ Ուղարկեք YouTube հղումը։",
		"ru": "Неверная ссылка. Отправьте ссылку на YouTube.",
	},
	UnknownCommandMsgID: {
		"en": "Unknown command. Use /start to begin.",
		"hy": "Անհայտ հրաման։ Սկսելու համար օգտագործեք /start։",
		"ru": "Неизвестная команда. Используйте /start для начала.",
	},
	HistoryHeaderMsgID: {
		"en": "Your recent downloads:",
		"hy": "Ձեր վերջին ներբեռնումները․",
		"ru": "Ваши последние загрузки:",
	},
	HistoryEmptyMsgID: {
		"en": "No downloads yet.",
		"hy": "Դեռ ներբեռնումներ չկան։",
		"ru": "Пока нет загрузок.",
	},
}
