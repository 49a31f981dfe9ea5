package textnorm

// traditionalToSimplified folds Traditional characters onto their
// Simplified forms, one rune at a time, covering the common opencc
// t2s single-character conversions. Unlisted characters pass through
// unchanged.
var traditionalToSimplified = map[rune]rune{
	'愛': '爱', '礙': '碍', '罷': '罢', '擺': '摆', '敗': '败', '頒': '颁', '辦': '办', '幫': '帮',
	'綁': '绑', '報': '报', '貝': '贝', '備': '备', '筆': '笔', '畢': '毕', '幣': '币', '閉': '闭',
	'邊': '边', '編': '编', '變': '变', '標': '标', '錶': '表', '別': '别', '賓': '宾', '餅': '饼',
	'撥': '拨', '駁': '驳', '補': '补', '佈': '布', '飽': '饱', '寶': '宝', '測': '测', '層': '层',
	'產': '产', '長': '长', '嘗': '尝', '償': '偿', '廠': '厂', '場': '场', '車': '车', '徹': '彻',
	'塵': '尘', '陳': '陈', '稱': '称', '懲': '惩', '遲': '迟', '齒': '齿', '衝': '冲', '蟲': '虫',
	'醜': '丑', '處': '处', '觸': '触', '傳': '传', '闖': '闯', '創': '创', '詞': '词', '賜': '赐',
	'聰': '聪', '從': '从', '叢': '丛', '湊': '凑', '錯': '错', '達': '达', '帶': '带', '貸': '贷',
	'擔': '担', '單': '单', '膽': '胆', '當': '当', '黨': '党', '導': '导', '島': '岛', '燈': '灯',
	'鄧': '邓', '敵': '敌', '遞': '递', '點': '点', '電': '电', '釣': '钓', '調': '调', '疊': '叠',
	'頂': '顶', '訂': '订', '東': '东', '動': '动', '凍': '冻', '獨': '独', '讀': '读', '賭': '赌',
	'斷': '断', '隊': '队', '對': '对', '噸': '吨', '頓': '顿', '奪': '夺', '鵝': '鹅', '額': '额',
	'惡': '恶', '餓': '饿', '兒': '儿', '爾': '尔', '發': '发', '罰': '罚', '範': '范', '販': '贩',
	'飯': '饭', '訪': '访', '紡': '纺', '飛': '飞', '費': '费', '紛': '纷', '墳': '坟', '奮': '奋',
	'憤': '愤', '豐': '丰', '風': '风', '鋒': '锋', '瘋': '疯', '馮': '冯', '縫': '缝', '鳳': '凤',
	'膚': '肤', '撫': '抚', '輔': '辅', '賦': '赋', '復': '复', '負': '负', '婦': '妇', '縛': '缚',
	'該': '该', '蓋': '盖', '趕': '赶', '幹': '干', '鋼': '钢', '崗': '岗', '綱': '纲', '個': '个',
	'給': '给', '宮': '宫', '貢': '贡', '溝': '沟', '構': '构', '購': '购', '夠': '够', '顧': '顾',
	'掛': '挂', '關': '关', '觀': '观', '館': '馆', '慣': '惯', '廣': '广', '歸': '归', '龜': '龟',
	'規': '规', '軌': '轨', '貴': '贵', '滾': '滚', '鍋': '锅', '國': '国', '過': '过', '還': '还',
	'漢': '汉', '號': '号', '閡': '阂', '賀': '贺', '橫': '横', '轟': '轰', '鴻': '鸿', '後': '后',
	'壺': '壶', '護': '护', '戶': '户', '華': '华', '畫': '画', '話': '话', '懷': '怀', '壞': '坏',
	'歡': '欢', '環': '环', '緩': '缓', '換': '换', '喚': '唤', '黃': '黄', '謊': '谎', '揮': '挥',
	'輝': '辉', '匯': '汇', '會': '会', '繪': '绘', '諱': '讳', '渾': '浑', '夥': '伙', '獲': '获',
	'貨': '货', '禍': '祸', '機': '机', '積': '积', '跡': '迹', '績': '绩', '極': '极', '級': '级',
	'擠': '挤', '幾': '几', '計': '计', '記': '记', '際': '际', '繼': '继', '紀': '纪', '夾': '夹',
	'價': '价', '駕': '驾', '殲': '歼', '監': '监', '堅': '坚', '間': '间', '艱': '艰', '檢': '检',
	'減': '减', '簡': '简', '見': '见', '鍵': '键', '艦': '舰', '薦': '荐', '鑒': '鉴', '將': '将',
	'漿': '浆', '獎': '奖', '講': '讲', '醬': '酱', '膠': '胶', '澆': '浇', '驕': '骄', '腳': '脚',
	'轎': '轿', '較': '较', '階': '阶', '節': '节', '潔': '洁', '結': '结', '誡': '诫', '緊': '紧',
	'錦': '锦', '僅': '仅', '盡': '尽', '進': '进', '晉': '晋', '經': '经', '驚': '惊', '鯨': '鲸',
	'頸': '颈', '競': '竞', '淨': '净', '鏡': '镜', '糾': '纠', '舊': '旧', '駒': '驹', '劇': '剧',
	'據': '据', '鋸': '锯', '捲': '卷', '絕': '绝', '覺': '觉', '軍': '军', '鈞': '钧', '駿': '骏',
	'開': '开', '凱': '凯', '墾': '垦', '懇': '恳', '庫': '库', '褲': '裤', '誇': '夸', '塊': '块',
	'寬': '宽', '礦': '矿', '虧': '亏', '擴': '扩', '闊': '阔', '來': '来', '萊': '莱', '蘭': '兰',
	'攔': '拦', '欄': '栏', '爛': '烂', '勞': '劳', '樂': '乐', '類': '类', '淚': '泪', '離': '离',
	'禮': '礼', '麗': '丽', '勵': '励', '歷': '历', '曆': '历', '隸': '隶', '倆': '俩', '聯': '联',
	'蓮': '莲', '連': '连', '臉': '脸', '練': '练', '戀': '恋', '煉': '炼', '鏈': '链', '糧': '粮',
	'兩': '两', '輛': '辆', '療': '疗', '遼': '辽', '鄰': '邻', '臨': '临', '靈': '灵', '鈴': '铃',
	'齡': '龄', '嶺': '岭', '劉': '刘', '龍': '龙', '樓': '楼', '蘆': '芦', '盧': '卢', '爐': '炉',
	'魯': '鲁', '陸': '陆', '錄': '录', '綠': '绿', '亂': '乱', '輪': '轮', '論': '论', '羅': '罗',
	'鑼': '锣', '駱': '骆', '絡': '络', '媽': '妈', '瑪': '玛', '碼': '码', '馬': '马', '罵': '骂',
	'嗎': '吗', '買': '买', '賣': '卖', '邁': '迈', '麥': '麦', '滿': '满', '蠻': '蛮', '饅': '馒',
	'夢': '梦', '彌': '弥', '謎': '谜', '覓': '觅', '綿': '绵', '麵': '面', '廟': '庙', '滅': '灭',
	'憫': '悯', '閩': '闽', '鳴': '鸣', '銘': '铭', '謬': '谬', '謀': '谋', '畝': '亩', '難': '难',
	'腦': '脑', '惱': '恼', '內': '内', '擬': '拟', '膩': '腻', '鳥': '鸟', '聶': '聂', '檸': '柠',
	'寧': '宁', '紐': '纽', '農': '农', '濃': '浓', '諾': '诺', '歐': '欧', '毆': '殴', '盤': '盘',
	'龐': '庞', '賠': '赔', '噴': '喷', '鵬': '鹏', '騙': '骗', '飄': '飘', '頻': '频', '貧': '贫',
	'蘋': '苹', '評': '评', '潑': '泼', '頗': '颇', '撲': '扑', '鋪': '铺', '樸': '朴', '譜': '谱',
	'齊': '齐', '騎': '骑', '豈': '岂', '啟': '启', '氣': '气', '棄': '弃', '牽': '牵', '鉛': '铅',
	'謙': '谦', '錢': '钱', '鉗': '钳', '淺': '浅', '譴': '谴', '槍': '枪', '牆': '墙', '強': '强',
	'搶': '抢', '橋': '桥', '喬': '乔', '僑': '侨', '翹': '翘', '竅': '窍', '親': '亲', '輕': '轻',
	'傾': '倾', '頃': '顷', '請': '请', '慶': '庆', '窮': '穷', '瓊': '琼', '趨': '趋', '區': '区',
	'軀': '躯', '驅': '驱', '權': '权', '勸': '劝', '確': '确', '讓': '让', '擾': '扰', '熱': '热',
	'認': '认', '榮': '荣', '絨': '绒', '軟': '软', '銳': '锐', '潤': '润', '灑': '洒', '薩': '萨',
	'賽': '赛', '傘': '伞', '喪': '丧', '澀': '涩', '殺': '杀', '紗': '纱', '篩': '筛', '曬': '晒',
	'刪': '删', '閃': '闪', '陝': '陕', '贍': '赡', '傷': '伤', '賞': '赏', '燒': '烧', '紹': '绍',
	'攝': '摄', '懾': '慑', '設': '设', '紳': '绅', '審': '审', '嬸': '婶', '腎': '肾', '滲': '渗',
	'聲': '声', '繩': '绳', '勝': '胜', '聖': '圣', '師': '师', '獅': '狮', '濕': '湿', '詩': '诗',
	'時': '时', '蝕': '蚀', '實': '实', '識': '识', '駛': '驶', '勢': '势', '適': '适', '釋': '释',
	'飾': '饰', '試': '试', '視': '视', '壽': '寿', '獸': '兽', '樞': '枢', '輸': '输', '書': '书',
	'贖': '赎', '屬': '属', '術': '术', '樹': '树', '豎': '竖', '數': '数', '帥': '帅', '雙': '双',
	'誰': '谁', '稅': '税', '順': '顺', '說': '说', '碩': '硕', '絲': '丝', '飼': '饲', '鬆': '松',
	'聳': '耸', '訟': '讼', '頌': '颂', '誦': '诵', '蘇': '苏', '訴': '诉', '肅': '肃', '雖': '虽',
	'隨': '随', '歲': '岁', '孫': '孙', '損': '损', '瑣': '琐', '鎖': '锁', '態': '态', '攤': '摊',
	'貪': '贪', '癱': '瘫', '灘': '滩', '壇': '坛', '談': '谈', '嘆': '叹', '湯': '汤', '燙': '烫',
	'濤': '涛', '討': '讨', '騰': '腾', '題': '题', '體': '体', '條': '条', '貼': '贴', '鐵': '铁',
	'廳': '厅', '聽': '听', '頭': '头', '圖': '图', '塗': '涂', '團': '团', '頹': '颓', '駝': '驼',
	'橢': '椭', '彎': '弯', '灣': '湾', '頑': '顽', '萬': '万', '網': '网', '韋': '韦', '違': '违',
	'圍': '围', '為': '为', '維': '维', '偉': '伟', '偽': '伪', '緯': '纬', '謂': '谓', '衛': '卫',
	'溫': '温', '聞': '闻', '穩': '稳', '問': '问', '渦': '涡', '窩': '窝', '臥': '卧', '嗚': '呜',
	'烏': '乌', '誣': '诬', '無': '无', '蕪': '芜', '吳': '吴', '塢': '坞', '霧': '雾', '務': '务',
	'誤': '误', '犧': '牺', '習': '习', '戲': '戏', '細': '细', '蝦': '虾', '轄': '辖', '峽': '峡',
	'俠': '侠', '狹': '狭', '廈': '厦', '鮮': '鲜', '纖': '纤', '賢': '贤', '銜': '衔', '閑': '闲',
	'顯': '显', '險': '险', '現': '现', '獻': '献', '縣': '县', '餡': '馅', '羨': '羡', '憲': '宪',
	'線': '线', '廂': '厢', '鑲': '镶', '鄉': '乡', '詳': '详', '響': '响', '項': '项', '蕭': '萧',
	'囂': '嚣', '銷': '销', '曉': '晓', '嘯': '啸', '協': '协', '挾': '挟', '攜': '携', '脅': '胁',
	'諧': '谐', '寫': '写', '瀉': '泻', '謝': '谢', '鋅': '锌', '興': '兴', '繡': '绣', '鏽': '锈',
	'虛': '虚', '噓': '嘘', '須': '须', '許': '许', '敘': '叙', '緒': '绪', '續': '续', '軒': '轩',
	'懸': '悬', '選': '选', '絢': '绚', '學': '学', '勛': '勋', '詢': '询', '尋': '寻', '馴': '驯',
	'訓': '训', '訊': '讯', '遜': '逊', '壓': '压', '鴉': '鸦', '鴨': '鸭', '啞': '哑', '亞': '亚',
	'嚴': '严', '閻': '阎', '顏': '颜', '鹽': '盐', '厭': '厌', '驗': '验', '鴦': '鸯', '楊': '杨',
	'揚': '扬', '陽': '阳', '養': '养', '樣': '样', '堯': '尧', '搖': '摇', '遙': '遥', '窯': '窑',
	'謠': '谣', '藥': '药', '爺': '爷', '頁': '页', '業': '业', '葉': '叶', '醫': '医', '遺': '遗',
	'儀': '仪', '誼': '谊', '億': '亿', '憶': '忆', '義': '义', '議': '议', '異': '异', '譯': '译',
	'藝': '艺', '陰': '阴', '銀': '银', '飲': '饮', '隱': '隐', '應': '应', '鷹': '鹰', '贏': '赢',
	'營': '营', '蠅': '蝇', '穎': '颖', '擁': '拥', '傭': '佣', '優': '优', '憂': '忧', '郵': '邮',
	'猶': '犹', '遊': '游', '誘': '诱', '於': '于', '魚': '鱼', '漁': '渔', '娛': '娱', '與': '与',
	'嶼': '屿', '語': '语', '獄': '狱', '譽': '誉', '預': '预', '園': '园', '員': '员', '圓': '圆',
	'遠': '远', '願': '愿', '約': '约', '躍': '跃', '鑰': '钥', '雲': '云', '運': '运', '雜': '杂',
	'災': '灾', '載': '载', '暫': '暂', '贊': '赞', '髒': '脏', '鑿': '凿', '棗': '枣', '責': '责',
	'擇': '择', '澤': '泽', '賊': '贼', '贈': '赠', '閘': '闸', '詐': '诈', '齋': '斋', '債': '债',
	'盞': '盏', '斬': '斩', '嶄': '崭', '戰': '战', '張': '张', '漲': '涨', '帳': '帐', '賬': '账',
	'趙': '赵', '這': '这', '貞': '贞', '針': '针', '偵': '侦', '診': '诊', '鎮': '镇', '陣': '阵',
	'掙': '挣', '睜': '睁', '箏': '筝', '爭': '争', '鄭': '郑', '證': '证', '織': '织', '職': '职',
	'執': '执', '紙': '纸', '摯': '挚', '擲': '掷', '幟': '帜', '質': '质', '滯': '滞', '鐘': '钟',
	'終': '终', '種': '种', '腫': '肿', '眾': '众', '週': '周', '軸': '轴', '晝': '昼', '皺': '皱',
	'驟': '骤', '豬': '猪', '諸': '诸', '誅': '诛', '燭': '烛', '囑': '嘱', '貯': '贮', '鑄': '铸',
	'築': '筑', '轉': '转', '賺': '赚', '莊': '庄', '裝': '装', '妝': '妆', '壯': '壮', '狀': '状',
	'錐': '锥', '墜': '坠', '綴': '缀', '準': '准', '濁': '浊', '資': '资', '蹤': '踪', '總': '总',
	'縱': '纵', '組': '组', '鑽': '钻', '裏': '里', '髮': '发', '臺': '台', '麼': '么', '係': '系',
	'紮': '扎', '專': '专', '輯': '辑', '們': '们', '紅': '红', '則': '则', '財': '财', '課': '课',
	'遷': '迁', '輩': '辈', '並': '并', '沒': '没',
}

func foldScript(r rune) rune {
	if simplified, ok := traditionalToSimplified[r]; ok {
		return simplified
	}
	return r
}
