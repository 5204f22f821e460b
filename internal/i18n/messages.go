package i18n

// Message ids shared by every language.
const (
	MsgStart          = "start"
	MsgHelp           = "help"
	MsgAdded          = "added"
	MsgAmountError    = "error"
	MsgBalance        = "balance"
	MsgExport         = "export"
	MsgReport         = "report"
	MsgLangSet        = "lang_set"
	MsgCategories     = "categories"
	MsgNoTransactions = "no_transactions"
	MsgCleared        = "cleared"
	MsgInvalidDate    = "invalid_date"
	MsgFileProcessed  = "file_processed"
	MsgFileError      = "file_error"
)

// Argument order per id:
//
//	added:          amount, category, description, balance
//	balance:        balance, income, expenses, count, status
//	report:         start, end, category, income, expenses, total, count
//	cleared:        count
//	file_processed: rows, balance
var catalogs = map[string]map[string]string{
	"en": {
		MsgStart: "🤖 *Personal Finance Tracker Bot*\n\nWelcome! I help you track your income and expenses.\n\n*Available Commands:*\n📈 `/add 1000 salary` - Add income (positive amount)\n📉 `/add -250 groceries` - Add expense (negative amount)\n💰 `/balance` - Show current balance\n📊 `/export` - Export transactions to Excel\n📋 `/history` - Show recent transactions\n📈 `/report 2025-08-01 2025-08-19 [category]` - Generate date range report\n🗑️ `/clear` - Clear all transactions\n🌐 `/setlang ru` - Change language\n📂 `/categories` - Show available categories\n❓ `/help` - Show this help message\n\nStart tracking your finances now! 💼",
		MsgAdded: "✅ *Transaction Added*\n\n💰 Amount: `%s`\n📂 Category: %s\n📝 Description: %s\n💰 New Balance: `%s`",
		MsgAmountError: "⚠️ Please provide an amount!\nExample: `/add 500 salary` or `/add -200 groceries`",
		MsgBalance: "📊 *Your Financial Summary*\n\n💰 **Current Balance:** `%s`\n📈 **Total Income:** `%s`\n📉 **Total Expenses:** `%s`\n📝 **Transactions:** %d\n\n%s",
		MsgExport: "📊 Generating your financial report...",
		MsgReport: "📊 *Financial Report*\n📅 Period: %s to %s\n📂 Category: %s\n\n📈 **Income:** `%s`\n📉 **Expenses:** `%s`\n💰 **Net Total:** `%s`\n📝 **Transactions:** %d",
		MsgLangSet: "✅ Language set to English",
		MsgCategories: "📂 *Available Categories:*\nsalary, food, transport, entertainment, shopping, utilities, healthcare, education, other",
		MsgNoTransactions: "📊 No transactions found for the specified period.",
		MsgCleared: "🗑️ *Transactions Cleared*\n\nSuccessfully removed %d transactions.\nYour balance has been reset to 0.",
		MsgInvalidDate: "❌ Invalid date format. Please use YYYY-MM-DD format.",
		MsgFileProcessed: "📊 File processed successfully! Added %d transactions.\nNew balance: %s",
		MsgFileError: "❌ Error processing file. Please make sure it's a valid Excel/CSV file with Date, Amount, and Category columns.",
		MsgHelp: "❓ *Help - Personal Finance Tracker*\n\n*Available Commands:*\n\n📈 `/add <amount> [category] [description]`\n   Add income (positive) or expense (negative)\n   Examples:\n   • `/add 1500 salary Monthly salary`\n   • `/add -75.50 food Groceries and coffee`\n\n💰 `/balance` - Show your current balance and summary\n📋 `/history` - Show your 10 most recent transactions\n📊 `/export` - Export all transactions to Excel file\n📈 `/report <start_date> <end_date> [category]` - Generate report for date range\n🗑️ `/clear` - Clear all your transactions (irreversible!)\n🌐 `/setlang <language>` - Change language (en, ru, kg)\n📂 `/categories` - Show available categories\n❓ `/help` - Show this help message\n\n*Tips:* Use positive numbers for income, negative for expenses. Descriptions are optional but helpful.",
	},
	"ru": {
		MsgStart: "🤖 *Бот учёта финансов*\n\nДобро пожаловать! Я помогаю отслеживать доходы и расходы.\n\n*Доступные команды:*\n📈 `/add 1000 зарплата` - Добавить доход (положительная сумма)\n📉 `/add -250 продукты` - Добавить расход (отрицательная сумма)\n💰 `/balance` - Показать текущий баланс\n📊 `/export` - Экспорт в Excel\n📋 `/history` - Показать последние транзакции\n📈 `/report 2025-08-01 2025-08-19 [категория]` - Отчёт за период\n🗑️ `/clear` - Очистить все транзакции\n🌐 `/setlang en` - Сменить язык\n📂 `/categories` - Показать категории\n❓ `/help` - Показать помощь\n\nНачните отслеживать финансы прямо сейчас! 💼",
		MsgAdded: "✅ *Транзакция добавлена*\n\n💰 Сумма: `%s`\n📂 Категория: %s\n📝 Описание: %s\n💰 Новый баланс: `%s`",
		MsgAmountError: "⚠️ Укажите сумму!\nПример: `/add 500 зарплата` или `/add -200 продукты`",
		MsgBalance: "📊 *Финансовая сводка*\n\n💰 **Текущий баланс:** `%s`\n📈 **Общий доход:** `%s`\n📉 **Общие расходы:** `%s`\n📝 **Транзакций:** %d\n\n%s",
		MsgExport: "📊 Генерация финансового отчёта...",
		MsgReport: "📊 *Финансовый отчёт*\n📅 Период: %s - %s\n📂 Категория: %s\n\n📈 **Доходы:** `%s`\n📉 **Расходы:** `%s`\n💰 **Итого:** `%s`\n📝 **Транзакций:** %d",
		MsgLangSet: "✅ Язык переключён на русский",
		MsgCategories: "📂 *Доступные категории:*\nзарплата, еда, транспорт, развлечения, покупки, коммуналка, здоровье, образование, прочее",
		MsgNoTransactions: "📊 Транзакции за указанный период не найдены.",
		MsgCleared: "🗑️ *Транзакции очищены*\n\nУспешно удалено %d транзакций.\nВаш баланс сброшен на 0.",
		MsgInvalidDate: "❌ Неверный формат даты. Используйте формат YYYY-MM-DD.",
		MsgFileProcessed: "📊 Файл успешно обработан! Добавлено %d транзакций.\nНовый баланс: %s",
		MsgFileError: "❌ Ошибка обработки файла. Убедитесь, что это корректный Excel/CSV файл с колонками Date, Amount и Category.",
		MsgHelp: "❓ *Помощь - Учёт финансов*\n\n*Доступные команды:*\n\n📈 `/add <сумма> [категория] [описание]`\n   Добавить доход (положительное) или расход (отрицательное)\n   Примеры:\n   • `/add 1500 зарплата Месячная зарплата`\n   • `/add -75.50 еда Продукты и кофе`\n\n💰 `/balance` - Показать баланс и сводку\n📋 `/history` - Показать 10 последних транзакций\n📊 `/export` - Экспорт всех транзакций в Excel\n📈 `/report <дата_начала> <дата_конца> [категория]` - Отчёт за период\n🗑️ `/clear` - Очистить все транзакции (необратимо!)\n🌐 `/setlang <язык>` - Сменить язык (en, ru, kg)\n📂 `/categories` - Показать категории\n❓ `/help` - Показать помощь\n\n*Советы:* Используйте положительные числа для доходов, отрицательные для расходов.",
	},
	"kg": {
		MsgStart: "🤖 *Каржы эсеп боту*\n\nКош келдиңиз! Мен киреше жана чыгымдарды көзөмөлдөйм.\n\n*Жеткиликтүү буйруктар:*\n📈 `/add 1000 айлык` - Киреше кошуу (оң сан)\n📉 `/add -250 тамак` - Чыгым кошуу (терс сан)\n💰 `/balance` - Учурдагы балансты көрсөтүү\n📊 `/export` - Excel'ге экспорт\n📋 `/history` - Акыркы транзакцияларды көрсөтүү\n📈 `/report 2025-08-01 2025-08-19 [категория]` - Мезгил боюнча отчёт\n🗑️ `/clear` - Бардык транзакцияларды тазалоо\n🌐 `/setlang en` - Тилди өзгөртүү\n📂 `/categories` - Категорияларды көрсөтүү\n❓ `/help` - Жардамды көрсөтүү\n\nКаржыңызды азыр эле көзөмөлдөй баштаңыз! 💼",
		MsgAdded: "✅ *Транзакция кошулду*\n\n💰 Сумма: `%s`\n📂 Категория: %s\n📝 Сүрөттөмө: %s\n💰 Жаңы баланс: `%s`",
		MsgAmountError: "⚠️ Суммасын көрсөтүңүз!\nМисалы: `/add 500 айлык` же `/add -200 тамак`",
		MsgBalance: "📊 *Каржылык корутунду*\n\n💰 **Учурдагы баланс:** `%s`\n📈 **Жалпы киреше:** `%s`\n📉 **Жалпы чыгым:** `%s`\n📝 **Транзакциялар:** %d\n\n%s",
		MsgExport: "📊 Каржылык отчёт түзүлүүдө...",
		MsgReport: "📊 *Каржылык отчёт*\n📅 Мезгили: %s - %s\n📂 Категория: %s\n\n📈 **Киреше:** `%s`\n📉 **Чыгым:** `%s`\n💰 **Жыйынтык:** `%s`\n📝 **Транзакциялар:** %d",
		MsgLangSet: "✅ Тил кыргызчага которулду",
		MsgCategories: "📂 *Жеткиликтүү категориялар:*\nайлык, тамак, транспорт, көңүл ачуу, сатып алуу, коммуналдык, ден соолук, билим берүү, башка",
		MsgNoTransactions: "📊 Көрсөтүлгөн мезгилде транзакциялар табылган жок.",
		MsgCleared: "🗑️ *Транзакциялар тазаланды*\n\n%d транзакция ийгиликтүү өчүрүлдү.\nБалансыңыз 0'ге кайтарылды.",
		MsgInvalidDate: "❌ Дата форматы туура эмес. YYYY-MM-DD форматын колдонуңуз.",
		MsgFileProcessed: "📊 Файл ийгиликтүү иштелип чыкты! %d транзакция кошулду.\nЖаңы баланс: %s",
		MsgFileError: "❌ Файлды иштетүүдө ката. Date, Amount жана Category колонкалары бар туура Excel/CSV файл болгонун текшериңиз.",
		MsgHelp: "❓ *Жардам - Каржы эсеби*\n\n*Жеткиликтүү буйруктар:*\n\n📈 `/add <сумма> [категория] [сүрөттөмө]`\n   Киреше (оң) же чыгым (терс) кошуу\n   Мисалдар:\n   • `/add 1500 айлык Айлык акы`\n   • `/add -75.50 тамак Азык-түлүк жана кофе`\n\n💰 `/balance` - Баланс жана корутундуну көрсөтүү\n📋 `/history` - Акыркы 10 транзакцияны көрсөтүү\n📊 `/export` - Бардык транзакцияларды Excel'ге экспорт\n📈 `/report <башталуу_күнү> <аяктоо_күнү> [категория]` - Мезгил боюнча отчёт\n🗑️ `/clear` - Бардык транзакцияларды тазалоо (кайтарылбайт!)\n🌐 `/setlang <тил>` - Тилди өзгөртүү (en, ru, kg)\n📂 `/categories` - Категорияларды көрсөтүү\n❓ `/help` - Жардамды көрсөтүү\n\n*Кеңештер:* Киреше үчүн оң сандарды, чыгым үчүн терс сандарды колдонуңуз.",
	},
}
